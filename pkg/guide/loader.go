package guide

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"fasal/pkg/workflow"
)

var ErrUnsupportedFormat = errors.New("unsupported guide file format")

// LoadFile reads a guide definition. YAML files carry the whole guide;
// CSV and XLSX files carry one step per row and take the remaining fields
// from the file name.
func LoadFile(path string) (*Guide, error) {
	var (
		g   *Guide
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		g, err = loadYAML(path)
	case ".csv":
		var rows [][]string
		if rows, err = readCSV(path); err == nil {
			g, err = fromRows(path, rows)
		}
	case ".xlsx":
		var rows [][]string
		if rows, err = readXLSX(path); err == nil {
			g, err = fromRows(path, rows)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("load guide %s: %w", path, err)
	}
	if err := workflow.Validate(g.Steps); err != nil {
		return nil, fmt.Errorf("load guide %s: %w", path, err)
	}
	return g, nil
}

func loadYAML(path string) (*Guide, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g Guide
	if err := yaml.Unmarshal(b, &g); err != nil {
		return nil, err
	}
	if g.ID == "" {
		g.ID = baseName(path)
	}
	if g.DefaultOpen == nil {
		g.DefaultOpen = currentStep(g.Steps)
	}
	return &g, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// fromRows turns a header row plus step rows into a guide. Header names are
// matched loosely so spreadsheets exported by hand still load.
func fromRows(path string, rows [][]string) (*Guide, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty step table")
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cID := findAny("id", "step_id", "key")
	cTitle := findAny("title", "name", "step")
	cDesc := findAny("description", "desc", "summary")
	cDur := findAny("duration", "duration_label", "period")
	cStatus := findAny("status", "state")
	cTasks := findAny("tasks", "task_list", "key_tasks")
	if cID == -1 || cStatus == -1 {
		return nil, fmt.Errorf("step table missing required columns; found headers %v, need at least id, status", rows[0])
	}

	g := &Guide{ID: baseName(path), Title: baseName(path)}
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		id := get(cID)
		if id == "" {
			continue
		}
		var tasks []string
		for _, t := range strings.Split(get(cTasks), "|") {
			if t = strings.TrimSpace(t); t != "" {
				tasks = append(tasks, t)
			}
		}
		g.Steps = append(g.Steps, workflow.Step{
			ID:          id,
			Title:       get(cTitle),
			Description: get(cDesc),
			Duration:    get(cDur),
			Tasks:       tasks,
			Status:      workflow.Status(strings.ToLower(get(cStatus))),
		})
	}
	g.DefaultOpen = currentStep(g.Steps)
	return g, nil
}

func currentStep(steps []workflow.Step) []string {
	for _, st := range steps {
		if st.Status == workflow.StatusCurrent {
			return []string{st.ID}
		}
	}
	return []string{}
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
