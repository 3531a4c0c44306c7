package guide

import (
	"fasal/pkg/workflow"
)

type CalendarEntry struct {
	Month     string `json:"month" yaml:"month"`
	Activity  string `json:"activity" yaml:"activity"`
	Intensity int    `json:"intensity" yaml:"intensity"`
}

// Guide is a cultivation guide: an ordered step checklist plus the season
// calendar shown next to it.
type Guide struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Crop        string          `json:"crop" yaml:"crop"`
	Region      string          `json:"region" yaml:"region"`
	Soil        string          `json:"soil" yaml:"soil"`
	Season      string          `json:"season" yaml:"season"`
	Steps       []workflow.Step `json:"steps" yaml:"steps"`
	Calendar    []CalendarEntry `json:"calendar" yaml:"calendar"`
	DefaultOpen []string        `json:"default_open" yaml:"default_open"`
}

// NewState builds a fresh disclosure state with the guide's default open steps.
func (g *Guide) NewState(strict bool) (*workflow.State, error) {
	return workflow.New(g.Steps, g.DefaultOpen, workflow.WithStrict(strict))
}

// RestoreState rebuilds a disclosure state from persisted open ids.
func (g *Guide) RestoreState(open []string, strict bool) (*workflow.State, error) {
	return workflow.New(g.Steps, open, workflow.WithStrict(strict))
}

// Default is the compiled-in wheat guide for Punjab.
func Default() *Guide {
	return &Guide{
		ID:     "wheat-punjab-alluvial",
		Title:  "Wheat Cultivation Guide",
		Crop:   "wheat",
		Region: "punjab",
		Soil:   "alluvial",
		Season: "Rabi 2023-24",
		Steps: []workflow.Step{
			{
				ID:          "prep",
				Title:       "Land Preparation",
				Description: "Soil testing, field preparation, and planning",
				Duration:    "2-3 weeks",
				Tasks: []string{
					"Conduct soil pH and nutrient testing",
					"Clear field of crop residue and weeds",
					"Deep plowing to 8-10 inches depth",
					"Apply organic matter (FYM/compost)",
					"Level the field for uniform water distribution",
				},
				Status: workflow.StatusCompleted,
			},
			{
				ID:          "variety",
				Title:       "Variety Selection",
				Description: "Choose optimal crop variety for local conditions",
				Duration:    "1 week",
				Tasks: []string{
					"Select disease-resistant varieties",
					"Consider maturity period (110-130 days)",
					"Check seed quality and germination rate",
					"Source certified seeds from authorized dealers",
					"Calculate seed requirement (100-125 kg/hectare)",
				},
				Status: workflow.StatusCurrent,
			},
			{
				ID:          "sowing",
				Title:       "Sowing & Planting",
				Description: "Optimal timing and techniques for sowing",
				Duration:    "1-2 weeks",
				Tasks: []string{
					"Sow during optimal window (Nov 15 - Dec 15)",
					"Maintain row spacing of 20-22.5 cm",
					"Sow seeds at 4-5 cm depth",
					"Apply starter fertilizer (DAP)",
					"Ensure adequate soil moisture at sowing",
				},
				Status: workflow.StatusUpcoming,
			},
			{
				ID:          "irrigation",
				Title:       "Water Management",
				Description: "Irrigation scheduling and water conservation",
				Duration:    "Throughout season",
				Tasks: []string{
					"First irrigation 3 weeks after sowing",
					"Critical irrigations: CRI, tillering, flowering",
					"Apply 5-6 irrigations (450-500mm total)",
					"Monitor soil moisture using sensors",
					"Implement drip/sprinkler where possible",
				},
				Status: workflow.StatusUpcoming,
			},
			{
				ID:          "nutrition",
				Title:       "Nutrient Management",
				Description: "Fertilizer application and soil health",
				Duration:    "Throughout season",
				Tasks: []string{
					"Apply NPK as per soil test recommendations",
					"Basal application: 50% N, full P & K",
					"Top dressing: 25% N at CRI, 25% at tillering",
					"Apply micronutrients (Zn, Fe) if deficient",
					"Monitor crop for nutrient deficiency symptoms",
				},
				Status: workflow.StatusUpcoming,
			},
			{
				ID:          "pest",
				Title:       "Pest & Disease Control",
				Description: "Integrated pest management strategies",
				Duration:    "Throughout season",
				Tasks: []string{
					"Regular monitoring for pests and diseases",
					"Use IPM approach: biological + chemical",
					"Apply preventive sprays during vulnerable stages",
					"Monitor weather for disease pressure",
					"Maintain field hygiene and crop rotation",
				},
				Status: workflow.StatusUpcoming,
			},
			{
				ID:          "harvest",
				Title:       "Harvest & Post-Harvest",
				Description: "Timing harvest and storage management",
				Duration:    "2-3 weeks",
				Tasks: []string{
					"Harvest at physiological maturity (85-90% grain moisture)",
					"Use combine harvester for efficiency",
					"Dry grains to 12-14% moisture content",
					"Clean and grade harvested produce",
					"Store in proper containers with pest control",
				},
				Status: workflow.StatusUpcoming,
			},
		},
		Calendar: []CalendarEntry{
			{Month: "Oct", Activity: "Land Prep", Intensity: 80},
			{Month: "Nov", Activity: "Sowing", Intensity: 100},
			{Month: "Dec", Activity: "Early Growth", Intensity: 60},
			{Month: "Jan", Activity: "Tillering", Intensity: 70},
			{Month: "Feb", Activity: "Stem Extension", Intensity: 90},
			{Month: "Mar", Activity: "Flowering", Intensity: 95},
			{Month: "Apr", Activity: "Grain Filling", Intensity: 85},
			{Month: "May", Activity: "Harvest", Intensity: 100},
		},
		DefaultOpen: []string{"variety"},
	}
}
