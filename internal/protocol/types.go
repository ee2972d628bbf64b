package protocol

import "encoding/json"

// Result is one successfully decoded transmission.
type Result struct {
	Data     uint16
	Checksum uint8
}

type resultWire struct {
	Value    string `json:"value"`
	Checksum uint8  `json:"checksum"`
}

// MarshalJSON renders Data as its hex form, the shape consumers print.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultWire{Value: r.Hex(), Checksum: r.Checksum})
}
