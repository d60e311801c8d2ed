package service

import (
	"fmt"

	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/transport"
)

type OpKind int

const (
	OpCreate OpKind = iota
	OpUpdate
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ChildOp is one step towards the submitted child list. Create carries the
// new row, Update carries only the columns that were sent.
type ChildOp[T any] struct {
	Kind    OpKind
	ID      uint
	Create  *T
	Updates map[string]any
}

// planChildren turns submitted items into operations, in submission order.
// A deleted item without an id refers to nothing and is dropped.
func planChildren[In any, T any](
	items []In,
	key func(In) (*uint, bool),
	build func(In) (*T, error),
	patch func(In) (map[string]any, error),
) ([]ChildOp[T], error) {
	ops := make([]ChildOp[T], 0, len(items))
	for i, item := range items {
		id, deleted := key(item)
		switch {
		case deleted && id == nil:
			continue
		case deleted:
			ops = append(ops, ChildOp[T]{Kind: OpDelete, ID: *id})
		case id != nil:
			updates, err := patch(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			ops = append(ops, ChildOp[T]{Kind: OpUpdate, ID: *id, Updates: updates})
		default:
			row, err := build(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			ops = append(ops, ChildOp[T]{Kind: OpCreate, Create: row})
		}
	}
	return ops, nil
}

func PlanImages(items []transport.ImageInput) ([]ChildOp[models.ProductImage], error) {
	ops, err := planChildren(items, imageKey, buildImage, patchImage)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	return ops, nil
}

func PlanOptions(items []transport.OptionInput) ([]ChildOp[models.ProductOption], error) {
	ops, err := planChildren(items, optionKey, buildOption, patchOption)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	return ops, nil
}

func imageKey(in transport.ImageInput) (*uint, bool) { return in.ID, in.Deleted }

func optionKey(in transport.OptionInput) (*uint, bool) { return in.ID, in.Deleted }

func buildImage(in transport.ImageInput) (*models.ProductImage, error) {
	if !in.Type.Present() || in.Type.Value == "" {
		return nil, fmt.Errorf("image type is required: %w", ErrValidation)
	}
	if !in.Content.Present() || in.Content.Value == "" {
		return nil, fmt.Errorf("image content is required: %w", ErrValidation)
	}
	return &models.ProductImage{
		Enabled: in.Enabled.Or(false),
		Type:    in.Type.Value,
		Content: in.Content.Value,
	}, nil
}

func patchImage(in transport.ImageInput) (map[string]any, error) {
	updates := map[string]any{}
	if in.Enabled.Present() {
		updates["enabled"] = in.Enabled.Value
	}
	if in.Type.Present() {
		updates["type"] = in.Type.Value
	}
	if in.Content.Present() {
		updates["content"] = in.Content.Value
	}
	return updates, nil
}

func buildOption(in transport.OptionInput) (*models.ProductOption, error) {
	if !in.Title.Present() || in.Title.Value == "" {
		return nil, fmt.Errorf("option title is required: %w", ErrValidation)
	}
	opt := &models.ProductOption{
		Title:  in.Title.Value,
		Shape:  in.Shape.Or(models.ShapeSquare),
		Radius: in.Radius.Or(0),
		Type:   in.Type.Or(models.OptionText),
		Values: in.Values.Or(models.ValueList{}),
	}
	if err := checkOption(opt.Shape, opt.Type); err != nil {
		return nil, err
	}
	return opt, nil
}

func patchOption(in transport.OptionInput) (map[string]any, error) {
	updates := map[string]any{}
	if in.Title.Present() {
		updates["title"] = in.Title.Value
	}
	if in.Shape.Present() {
		if err := checkOption(in.Shape.Value, models.OptionText); err != nil {
			return nil, err
		}
		updates["shape"] = in.Shape.Value
	}
	if in.Radius.Present() {
		updates["radius"] = in.Radius.Value
	}
	if in.Type.Present() {
		if err := checkOption(models.ShapeSquare, in.Type.Value); err != nil {
			return nil, err
		}
		updates["type"] = in.Type.Value
	}
	if in.Values.Present() {
		updates["values"] = in.Values.Value
	}
	return updates, nil
}

func checkOption(shape, typ string) error {
	if !models.ValidShape(shape) {
		return fmt.Errorf("option shape %q: %w", shape, ErrValidation)
	}
	if !models.ValidOptionType(typ) {
		return fmt.Errorf("option type %q: %w", typ, ErrValidation)
	}
	return nil
}
