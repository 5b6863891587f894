package surface

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack encodes the surface as MessagePack with the same shape as the JSON
// wire format. Map keys are written sorted, so identical trees produce
// identical bytes.
func (s Surface) Msgpack() ([]byte, error) {
	if err := s.checkFinite(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(s.Tree()); err != nil {
		return nil, fmt.Errorf("surface: msgpack encode: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeMsgpack parses a MessagePack document produced by Surface.Msgpack.
func DecodeMsgpack(data []byte) (Surface, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return Surface{}, Issues{{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err}}
	}
	if _, err := dec.PeekCode(); err == nil {
		return Surface{}, Issues{{Code: CodeParseError, Path: "/", Message: "unexpected data after top-level value"}}
	}
	return surfaceFromTree(tree)
}

// checkFinite reports the first non-finite number in the tree, mirroring the
// JSON encoder.
func (s Surface) checkFinite() error {
	_, err := s.MarshalJSON()
	return err
}
