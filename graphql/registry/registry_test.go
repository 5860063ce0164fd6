package registry

import (
	"context"
	"testing"
)

func TestRegistry_Register_Resolve(t *testing.T) {
	defer Unregister("sizeChart")

	Register("sizeChart", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]string{"S": "36", "M": "38", "L": "40"}, nil
	})

	got, err := Resolve(context.Background(), "sizeChart", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m, ok := got.(map[string]string)
	if !ok || m["M"] != "38" {
		t.Errorf("got %v, want size chart map", got)
	}
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	_, err := Resolve(context.Background(), "loyaltyPoints", nil)
	if err == nil {
		t.Fatal("want error for unknown extension")
	}
}

func TestRegistry_Names(t *testing.T) {
	defer Unregister("careGuide")
	Register("careGuide", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })

	names := Names()
	found := false
	for _, n := range names {
		if n == "careGuide" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Names() = %v, want to include careGuide", names)
	}
}
