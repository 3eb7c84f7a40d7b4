package eval

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights holds the divisors that scale positional terms down against material.
type Weights struct {
	Diagonal int `json:"diagonal_divisor"`
	Center   int `json:"center_divisor"`
	Mobility int `json:"mobility_divisor"`
	Activity int `json:"activity_divisor"`
}

func DefaultWeights() Weights {
	return Weights{
		Diagonal: 5,
		Center:   4,
		Mobility: 30,
		Activity: 10,
	}
}

func (w Weights) Validate() error {
	if w.Diagonal <= 0 || w.Center <= 0 || w.Mobility <= 0 || w.Activity <= 0 {
		return fmt.Errorf("weights: divisors must be positive: %+v", w)
	}
	return nil
}

// LoadWeights reads a JSON file. Missing fields keep their default value.
func LoadWeights(path string) (Weights, error) {
	var w = DefaultWeights()
	var data, err = os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("weights: %w", err)
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("weights %v: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}
