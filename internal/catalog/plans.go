package catalog

import "github.com/Freeeeeet/golf_lessons/internal/model"

var plans = []model.PlanInfo{
	{
		ID:          model.PlanFree,
		Name:        "Free Trial",
		Price:       0,
		Period:      "/7 days",
		Description: "Perfect for getting started",
		Features: []string{
			"5 Free Courses",
			"Basic Progress Tracking",
			"Community Access",
			"Mobile App Access",
		},
		Limitations: []string{
			"Limited course selection",
			"No 1-on-1 lessons",
			"Basic analytics only",
		},
	},
	{
		ID:          model.PlanPremium,
		Name:        "Monthly",
		Price:       29,
		Period:      "/month",
		Description: "Most popular choice",
		Popular:     true,
		Features: []string{
			"All Courses (100+)",
			"2 Monthly Lessons",
			"Advanced Analytics",
			"Quiz System",
			"Priority Support",
			"Downloadable Content",
			"Progress Certificates",
		},
	},
	{
		ID:          model.PlanPro,
		Name:        "Annual",
		Price:       219,
		Period:      "/year",
		Description: "For serious golfers",
		Features: []string{
			"Everything in Monthly",
			"Unlimited Lessons",
			"Personal Golf Coach",
			"Custom Training Plans",
			"Video Analysis",
			"Equipment Recommendations",
			"Tournament Prep",
			"Exclusive Masterclasses",
		},
	},
}

// Plans возвращает все тарифные планы
func Plans() []model.PlanInfo {
	return plans
}

// PlanByID ищет тарифный план по ID
func PlanByID(id model.Plan) (model.PlanInfo, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return model.PlanInfo{}, false
}
