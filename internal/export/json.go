package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/field"
)

type Trace struct {
	Config  *config.Config       `json:"config"`
	Frames  int                  `json:"frames"`
	Start   field.Balls          `json:"start"`
	End     field.Balls          `json:"end"`
	Series  map[string][]float64 `json:"series"`
	Metrics map[string]float64   `json:"metrics"`
}

func WriteJSON(w io.Writer, data *Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func SaveJSON(path string, data *Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}
