package consts

import (
	"math/rand"
)

// CulturalTip is a piece of everyday health advice shown in the
// notification feed.
type CulturalTip struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Icon     string `json:"icon"`
}

var CulturalTips = []CulturalTip{
	{
		Category: "Health",
		Title:    "Rest No Be Laziness",
		Content:  "Body no be generator. If you tire, rest small. Sleep well-well at night. Hustle sweet, but if your health spoil, who go enjoy the money?",
		Icon:     "moon",
	},
	{
		Category: "Diet",
		Title:    "Don't Fear Beans",
		Content:  "Beans fit give breeze, but e build body well. Plenty protein dey inside. Just soak am before cooking so e soft and easy for stomach.",
		Icon:     "bean",
	},
	{
		Category: "Mental Health",
		Title:    "Talk Am Out",
		Content:  "If something dey worry you, no lock am inside like old cupboard. Find person wey you trust talk am. Mind wey calm fit think better.",
		Icon:     "message-circle",
	},
	{
		Category: "Environment",
		Title:    "Plant Something",
		Content:  "Even if na small pepper for bucket, plant something. Green things dey cool environment and give fresh food. Na small-small we dey build better tomorrow.",
		Icon:     "sprout",
	},
	{
		Category: "Food Safety",
		Title:    "Cover Your Food",
		Content:  "Fly no dey knock before e land. Always cover your food. One small contamination fit cause big wahala for belle.",
		Icon:     "shield",
	},
	{
		Category: "Hydration",
		Title:    "Drink Water Before Thirst",
		Content:  "No wait until your throat dry like harmattan. Drink water steady during the day. Your kidney go thank you quietly.",
		Icon:     "glass-water",
	},
	{
		Category: "Lifestyle",
		Title:    "Reduce Too Much Sugar",
		Content:  "Soft drink sweet, but too much sugar dey stress body. Try take am easy. Water and fresh fruit na better long-term friend.",
		Icon:     "cup-soda",
	},
	{
		Category: "Community",
		Title:    "Check On Your Neighbour",
		Content:  "Community na strength. Sometimes greet your neighbour, check if dem dey okay. Strong village spirit dey protect everybody.",
		Icon:     "users",
	},
	{
		Category: "Hygiene",
		Title:    "Sun-Dry Your Bedding",
		Content:  "Once in a while, carry mattress or pillow go sun small. Sunlight dey kill some germs and remove smell. Nature get free disinfectant.",
		Icon:     "sun",
	},
	{
		Category: "Nutrition",
		Title:    "Eat Local Fruits",
		Content:  "Pawpaw, orange, pineapple - no underrate them. Local fruits get plenty vitamins and dey cheaper than imported snacks.",
		Icon:     "apple",
	},
}

// RandomTip picks one tip at random.
func RandomTip() CulturalTip {
	return CulturalTips[rand.Intn(len(CulturalTips))]
}

// TipsByCategory filters tips by category, case sensitively matching
// the stored category names.
func TipsByCategory(category string) []CulturalTip {
	var tips []CulturalTip
	for _, tip := range CulturalTips {
		if tip.Category == category {
			tips = append(tips, tip)
		}
	}
	return tips
}
