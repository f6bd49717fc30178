package catalog

// The practice registry. Impact tiers and SDG mappings drive the ledger's
// score arithmetic; descriptions and tips are display-only.
//
//nolint:gochecknoglobals // Static read-only catalog data.
var categories = []Category{
	{
		Name:        "Water Conservation",
		Description: "Use less mains water and make the most of Irish rainfall.",
		Practices: []Practice{
			{
				ID:          "water-1",
				Name:        "Harvest rainwater in a barrel",
				Description: "Divert a downpipe into a water butt and use it for beds and containers.",
				Impact:      ImpactHigh,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Fit a lid to keep out leaves and midges",
					"Raise the barrel on blocks so a can fits under the tap",
				},
				SDGs: []string{"sdg6"},
			},
			{
				ID:          "water-2",
				Name:        "Mulch beds to retain moisture",
				Description: "A 5cm mulch of bark or compost cuts evaporation and suppresses weeds.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Mulch onto damp soil, not dry",
					"Keep mulch clear of woody stems",
				},
				SDGs: []string{"sdg6", "sdg15"},
			},
			{
				ID:          "water-3",
				Name:        "Water at dawn or dusk",
				Description: "Watering outside the heat of the day halves what the garden needs.",
				Impact:      ImpactLow,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Water the roots, not the leaves",
				},
				SDGs: []string{"sdg6"},
			},
			{
				ID:          "water-4",
				Name:        "Install drip irrigation",
				Description: "Drip lines deliver water where it is needed with almost no waste.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyModerate,
				Tips: []string{
					"Run lines under mulch to cut evaporation further",
					"Pair with a timer for holidays",
				},
				SDGs: []string{"sdg6", "sdg9"},
			},
		},
	},
	{
		Name:        "Soil Health",
		Description: "Feed the soil so the soil feeds the garden.",
		Practices: []Practice{
			{
				ID:          "soil-1",
				Name:        "Start a compost heap",
				Description: "Turn garden and kitchen waste into free soil conditioner.",
				Impact:      ImpactHigh,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Balance green (nitrogen) and brown (carbon) material",
					"Turn the heap monthly to speed it up",
				},
				SDGs: []string{"sdg12", "sdg15"},
			},
			{
				ID:          "soil-2",
				Name:        "Adopt no-dig beds",
				Description: "Leaving soil structure intact protects worms, fungi, and stored carbon.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyModerate,
				Tips: []string{
					"Top-dress with compost each spring instead of digging it in",
				},
				SDGs: []string{"sdg15", "sdg13"},
			},
			{
				ID:          "soil-3",
				Name:        "Sow green manure over winter",
				Description: "Cover crops like phacelia hold nutrients that winter rain would leach away.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Cut down before flowering and leave as a mulch",
				},
				SDGs: []string{"sdg15", "sdg13"},
			},
			{
				ID:          "soil-4",
				Name:        "Test soil before amending",
				Description: "Knowing pH and texture avoids wasted lime, feed, and fertiliser.",
				Impact:      ImpactLow,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Sample from several spots and mix before testing",
				},
				SDGs: []string{"sdg12"},
			},
		},
	},
	{
		Name:        "Biodiversity",
		Description: "Make room for the wildlife that keeps a garden healthy.",
		Practices: []Practice{
			{
				ID:          "bio-1",
				Name:        "Plant a native hedgerow",
				Description: "Hawthorn, blackthorn, and holly shelter birds and overwintering insects.",
				Impact:      ImpactHigh,
				Difficulty:  DifficultyHard,
				Tips: []string{
					"Plant bare-root whips between November and March",
					"Mix at least five native species",
				},
				SDGs: []string{"sdg15"},
			},
			{
				ID:          "bio-2",
				Name:        "Leave a wild corner",
				Description: "An unmown, unweeded patch is habitat for pollinators and hedgehogs.",
				Impact:      ImpactLow,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Cut once in late autumn and remove the clippings",
				},
				SDGs: []string{"sdg15"},
			},
			{
				ID:          "bio-3",
				Name:        "Put up bird and bat boxes",
				Description: "Nesting sites replace the old trees and eaves modern gardens lack.",
				Impact:      ImpactLow,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Face boxes north or east, out of midday sun",
				},
				SDGs: []string{"sdg15"},
			},
			{
				ID:          "bio-4",
				Name:        "Grow pollinator-friendly flowers",
				Description: "Single, open blooms from March to October feed bees through the season.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Avoid double-flowered cultivars, pollinators cannot reach the nectar",
				},
				SDGs: []string{"sdg15", "sdg2"},
			},
		},
	},
	{
		Name:        "Energy & Resources",
		Description: "Cut the energy and embodied carbon the garden consumes.",
		Practices: []Practice{
			{
				ID:          "energy-1",
				Name:        "Choose hand tools over powered",
				Description: "Shears and a push mower cover most small-garden jobs without fuel or charge.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Keep blades sharp, most of the effort in hand tools is blunt edges",
				},
				SDGs: []string{"sdg7", "sdg13"},
			},
			{
				ID:          "energy-2",
				Name:        "Switch to solar garden lighting",
				Description: "Solar path and feature lights need no wiring and no grid power.",
				Impact:      ImpactLow,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Site panels clear of hedge shade",
				},
				SDGs: []string{"sdg7"},
			},
			{
				ID:          "energy-3",
				Name:        "Build with reclaimed materials",
				Description: "Scaffold boards and old brick carry no new embodied carbon.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyModerate,
				Tips: []string{
					"Check reclaimed timber for old treatment before using near food crops",
				},
				SDGs: []string{"sdg12", "sdg13"},
			},
		},
	},
	{
		Name:        "Waste Reduction",
		Description: "Keep material cycling in the garden instead of in a skip.",
		Practices: []Practice{
			{
				ID:          "waste-1",
				Name:        "Compost kitchen scraps",
				Description: "Peelings and grounds become feed for the heap instead of bin weight.",
				Impact:      ImpactHigh,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Keep cooked food out unless you run a sealed hot bin",
				},
				SDGs: []string{"sdg12"},
			},
			{
				ID:          "waste-2",
				Name:        "Go peat-free",
				Description: "Peat extraction destroys bogs that store vast amounts of carbon.",
				Impact:      ImpactHigh,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Peat-free composts dry out differently, check pots by weight not colour",
				},
				SDGs: []string{"sdg13", "sdg15"},
			},
			{
				ID:          "waste-3",
				Name:        "Reuse pots and trays",
				Description: "Washed pots last years; toilet-roll tubes make free root trainers.",
				Impact:      ImpactLow,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Disinfect reused pots to stop damping-off",
				},
				SDGs: []string{"sdg12"},
			},
			{
				ID:          "waste-4",
				Name:        "Make your own liquid feed",
				Description: "Comfrey or nettle feed replaces bought fertiliser and its packaging.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyModerate,
				Tips: []string{
					"Dilute comfrey feed to the colour of weak tea",
					"Brew it far from the back door, it is pungent",
				},
				SDGs: []string{"sdg12"},
			},
		},
	},
	{
		Name:        "Food Growing",
		Description: "Shorten the food chain to the length of the garden path.",
		Practices: []Practice{
			{
				ID:          "food-1",
				Name:        "Grow your own vegetables",
				Description: "Even a few beds of potatoes, kale, and salads cut food miles to zero.",
				Impact:      ImpactHigh,
				Difficulty:  DifficultyModerate,
				Tips: []string{
					"Start with crops that are expensive or poor in shops, salads and herbs",
				},
				SDGs: []string{"sdg2", "sdg12"},
			},
			{
				ID:          "food-2",
				Name:        "Save seed from open-pollinated crops",
				Description: "Saved seed costs nothing and adapts to your garden year on year.",
				Impact:      ImpactMedium,
				Difficulty:  DifficultyModerate,
				Tips: []string{
					"Skip F1 hybrids, they do not come true from seed",
				},
				SDGs: []string{"sdg2"},
			},
			{
				ID:          "food-3",
				Name:        "Plant fruit trees",
				Description: "An apple or plum tree crops for decades while locking up carbon.",
				Impact:      ImpactHigh,
				Difficulty:  DifficultyModerate,
				Tips: []string{
					"Check the rootstock, it sets the final size of the tree",
					"Most varieties need a pollination partner nearby",
				},
				SDGs: []string{"sdg2", "sdg13"},
			},
			{
				ID:          "food-4",
				Name:        "Succession-sow salad crops",
				Description: "A short row every fortnight beats one glut and months of nothing.",
				Impact:      ImpactLow,
				Difficulty:  DifficultyEasy,
				Tips: []string{
					"Sow little and often from March to September",
				},
				SDGs: []string{"sdg2"},
			},
		},
	},
}
