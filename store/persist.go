package store

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"ethnicshop.GO/catalog"
)

// Snapshot is the durable subset of the session state. It is written
// wholesale to one file after every mutation and read once at startup.
// Orders are persisted but never restored; startup replays only cart,
// wishlist and reviews.
type Snapshot struct {
	Cart     []CartItem        `json:"cart" mapstructure:"cart"`
	Wishlist []catalog.Product `json:"wishlist" mapstructure:"wishlist"`
	Reviews  map[int][]Review  `json:"reviews" mapstructure:"reviews"`
	Orders   []Order           `json:"orders" mapstructure:"orders"`
}

// persistLocked writes the snapshot. Callers hold s.mu.
func (s *Store) persistLocked() {
	if s.stateFile == "" {
		return
	}
	snap := Snapshot{
		Cart:     s.state.Cart,
		Wishlist: s.state.Wishlist,
		Reviews:  s.state.Reviews,
		Orders:   s.state.Orders,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Error("state snapshot marshal failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.stateFile, data, 0644); err != nil {
		s.log.Error("state snapshot write failed", zap.Error(err))
	}
}

// LoadSnapshot reads a snapshot file. A missing file yields (nil, nil).
// Anything unparseable is an error the caller downgrades to "no prior
// state"; corrupt snapshots must never crash the application.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeSnapshot(data)
}

// DecodeSnapshot parses snapshot JSON. The document is decoded loosely first
// and then mapped onto the typed snapshot with coercion hooks, so snapshots
// written by older storefront builds (string ids, 0/1 stock flags) still load.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("snapshot parse: %w", err)
	}

	var snap Snapshot
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &snap,
		WeaklyTypedInput: true,
		DecodeHook:       stringToIntHook(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	return &snap, nil
}

func stringToIntHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t.Kind() {
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(data.(string), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("numeric field: %q", data)
			}
			return n, nil
		}
		return data, nil
	}
}
