package square

import (
	"io"
	"time"

	"git.gammaspectra.live/P2Pool/square/types"
	"git.gammaspectra.live/P2Pool/square/utils"
)

type PositionReport struct {
	Position int  `json:"position"`
	Samples  int  `json:"samples"`
	Value    byte `json:"value"`
}

// Report statistics of one attack run
type Report struct {
	Rounds    int                             `json:"rounds"`
	Positions [types.BlockSize]PositionReport `json:"positions"`
	Queries   uint64                          `json:"queries"`
	CacheHits uint64                          `json:"cache_hits"`
	Duration  time.Duration                   `json:"duration"`
	RoundKey  types.Block                     `json:"round_key"`
	Key       types.Block                     `json:"key"`
}

// Samples total delta sets used, summed over positions
func (r *Report) Samples() (n int) {
	for _, p := range r.Positions {
		n += p.Samples
	}
	return n
}

func (r *Report) MarshalIndent() ([]byte, error) {
	return utils.MarshalJSONIndent(r, "  ")
}

// Encode writes r to writer as a single line of JSON
func (r *Report) Encode(writer io.Writer) error {
	return utils.NewJSONEncoder(writer).Encode(r)
}

func DecodeReport(reader io.Reader) (*Report, error) {
	var r Report
	if err := utils.NewJSONDecoder(reader).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
