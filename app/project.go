// Package app provides the batch layer on top of the diagnostics engine.
package app

import (
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ArtesiaWater/pastas/adapters/stats"
	"github.com/ArtesiaWater/pastas/domain/core"
	"github.com/ArtesiaWater/pastas/domain/model"
)

// Project holds the diagnostics engines of multiple named models so the
// same statistics can be compared across them in a batch.
type Project struct {
	name string

	mu     sync.RWMutex
	models map[string]*stats.Statistics
}

// NewProject creates an empty project
func NewProject(name string) *Project {
	return &Project{
		name:   name,
		models: make(map[string]*stats.Statistics),
	}
}

// Name returns the project name
func (p *Project) Name() string {
	return p.name
}

// AddModel registers a model under a unique name and returns its
// diagnostics engine. A duplicate name replaces the previous entry with a
// warning, mirroring the batch layer this follows.
func (p *Project) AddModel(name string, provider model.SeriesProvider) *stats.Statistics {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.models[name]; exists {
		log.Printf("[Project %s] Model name %q is not unique, replacing previous model", p.name, name)
	}
	engine := stats.New(provider)
	p.models[name] = engine
	return engine
}

// DelModel removes a model from the project
func (p *Project) DelModel(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.models, name)
}

// Model returns the diagnostics engine of a named model
func (p *Project) Model(name string) (*stats.Statistics, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	engine, ok := p.models[name]
	if !ok {
		return nil, core.ErrModelNotFound
	}
	return engine, nil
}

// ModelNames returns the registered model names in sorted order
func (p *Project) ModelNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.models))
	for name := range p.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StatsTable is a models-by-statistics matrix: one row per model, one
// column per statistic identifier.
type StatsTable struct {
	Models []string
	Ops    []stats.Op
	Values [][]float64
}

// Get returns one cell of the table
func (t *StatsTable) Get(modelName string, op stats.Op) (float64, bool) {
	row := -1
	for i, name := range t.Models {
		if name == modelName {
			row = i
			break
		}
	}
	if row < 0 {
		return 0, false
	}
	for j, o := range t.Ops {
		if o == op {
			return t.Values[row][j], true
		}
	}
	return 0, false
}

// SetStats computes the selected statistics for every model in the
// project. An empty selection uses the engine's default Many selection.
// Models are evaluated concurrently; estimator calls are independent and
// side-effect-free, so this is safe as long as the providers support
// concurrent reads.
func (p *Project) SetStats(w core.Window, ops []stats.Op) (*StatsTable, error) {
	names := p.ModelNames()

	table := &StatsTable{
		Models: names,
		Values: make([][]float64, len(names)),
	}

	var g errgroup.Group
	rows := make([][]stats.OpValue, len(names))
	for i, name := range names {
		engine, err := p.Model(name)
		if err != nil {
			return nil, err
		}
		i := i
		g.Go(func() error {
			row, err := engine.Many(w, ops)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if table.Ops == nil {
			table.Ops = make([]stats.Op, len(row))
			for j, ov := range row {
				table.Ops[j] = ov.Op
			}
		}
		table.Values[i] = make([]float64, len(row))
		for j, ov := range row {
			table.Values[i][j] = ov.Value
		}
	}
	return table, nil
}
