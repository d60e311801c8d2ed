package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
)

const DefaultIndex = "products"

func NewESClient(url, user, password string) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
}

// ESIndexer keeps a product search index in step with committed writes.
type ESIndexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewESIndexer(es *elasticsearch.Client, index string) *ESIndexer {
	if index == "" {
		index = DefaultIndex
	}
	return &ESIndexer{ES: es, Index: index}
}

func (x *ESIndexer) Publish(ctx context.Context, evt Event) error {
	id := strconv.FormatUint(uint64(evt.ProductID), 10)

	switch evt.Type {
	case ProductCreated, ProductUpdated:
		if evt.Product == nil {
			return fmt.Errorf("es: %s event for product %s has no document", evt.Type, id)
		}
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(evt.Product); err != nil {
			return fmt.Errorf("es: encode product %s: %w", id, err)
		}
		res, err := x.ES.Index(x.Index, &buf,
			x.ES.Index.WithDocumentID(id),
			x.ES.Index.WithContext(ctx),
		)
		if err != nil {
			return fmt.Errorf("es: index product %s: %w", id, err)
		}
		defer res.Body.Close()
		if res.IsError() {
			return responseError("index", id, res.Status(), res.Body)
		}
	case ProductDeleted:
		res, err := x.ES.Delete(x.Index, id, x.ES.Delete.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("es: delete product %s: %w", id, err)
		}
		defer res.Body.Close()
		if res.IsError() && res.StatusCode != http.StatusNotFound {
			return responseError("delete", id, res.Status(), res.Body)
		}
	}
	return nil
}

func responseError(op, id, status string, body io.Reader) error {
	detail, _ := io.ReadAll(io.LimitReader(body, 512))
	return fmt.Errorf("es: %s product %s: %s: %s", op, id, status, bytes.TrimSpace(detail))
}
