// Package export serializes finished runs for external tools: indented JSON
// for analysis scripts and standalone SVG for trajectory figures.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/skipstone/internal/sim"
)

type RunData struct {
	Stone      string             `json:"stone"`
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Bounces    int                `json:"bounces"`
	FinalPhase string             `json:"final_phase"`
	Times      []float64          `json:"times"`
	States     [][]float64        `json:"states"`
	Phases     []string           `json:"phases"`
	Metrics    map[string]float64 `json:"metrics"`
}

func buildRunData(stone, integrator string, dt, duration float64, result *sim.Result) RunData {
	data := RunData{
		Stone:      stone,
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Steps:      len(result.Times),
		Bounces:    result.Bounces,
		FinalPhase: result.FinalPhase.String(),
		Times:      result.Times,
		States:     make([][]float64, len(result.States)),
		Phases:     make([]string, len(result.Phases)),
		Metrics:    result.Metrics,
	}
	for i, s := range result.States {
		data.States[i] = s
	}
	for i, p := range result.Phases {
		data.Phases[i] = p.String()
	}
	return data
}

func WriteJSON(w io.Writer, stone, integrator string, dt, duration float64, result *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildRunData(stone, integrator, dt, duration, result))
}

func JSONFile(path, stone, integrator string, dt, duration float64, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, stone, integrator, dt, duration, result)
}
