package stego

import (
	"github.com/ironsheep/emd-stegano/internal/emd"
	"github.com/ironsheep/emd-stegano/internal/imaging"
	"github.com/ironsheep/emd-stegano/internal/payload"
)

// ExtractRequest describes one extraction.
type ExtractRequest struct {
	Input      string
	N          int
	Length     int // bytes to read; for compressed payloads the compressed length
	Decompress bool
	Trace      func(emd.GroupEvent)
}

// ExtractReport is the outcome of Extract.
type ExtractReport struct {
	Params    emd.Params `json:"params"`
	Data      []byte     `json:"data"`
	Converted bool       `json:"converted"`
}

// Extract reads req.Length bytes hidden with group size req.N.
func Extract(req ExtractRequest) (*ExtractReport, error) {
	opts := []emd.Option{}
	if req.Trace != nil {
		opts = append(opts, emd.WithTrace(req.Trace))
	}
	codec, err := emd.New(req.N, opts...)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Load(req.Input)
	if err != nil {
		return nil, err
	}

	data, err := codec.Extract(img.Plane, req.Length)
	if err != nil {
		return nil, err
	}
	if req.Decompress {
		if data, err = payload.Decompress(data); err != nil {
			return nil, err
		}
	}

	return &ExtractReport{
		Params:    codec.Params(),
		Data:      data,
		Converted: img.Converted,
	}, nil
}
