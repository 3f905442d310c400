package catalog

import "github.com/apper-canvas/nutriscancore/internal/domain"

const imageBase = "https://images.unsplash.com/"

// DefaultRecords is the built-in catalog of Indian dishes and ingredients.
// Order matters: keyword and partial-name matching return the first hit.
var DefaultRecords = []domain.FoodRecord{
	{
		ID:          "butter-chicken",
		Name:        "Butter Chicken",
		Description: "Creamy tomato-based curry with tender chicken pieces",
		Category:    domain.CategoryNorthIndianCurry,
		Region:      "North India",
		Image:       imageBase + "photo-1603894584373-5ac82b2ae398",
		Keywords:    []string{"butter chicken", "murgh makhani", "makhani", "creamy chicken"},
		Calories:    285,
		Protein:     22.5,
		Carbs:       8.2,
		Fats:        18.5,
		PortionSize: "150g",
		HealthScore: 6.8,
	},
	{
		ID:          "palak-paneer",
		Name:        "Palak Paneer",
		Description: "Nutritious spinach curry with soft paneer cubes",
		Category:    domain.CategoryNorthIndianCurry,
		Region:      "North India",
		Image:       imageBase + "photo-1631452180519-c014fe946bc7",
		Keywords:    []string{"palak paneer", "spinach paneer", "saag paneer", "spinach curry"},
		Calories:    210,
		Protein:     12.8,
		Carbs:       9.5,
		Fats:        14.2,
		PortionSize: "150g",
		HealthScore: 8.5,
	},
	{
		ID:          "chana-masala",
		Name:        "Chana Masala",
		Description: "Protein-rich chickpea curry with aromatic spices",
		Category:    domain.CategoryNorthIndianCurry,
		Region:      "North India",
		Image:       imageBase + "photo-1585937421612-70a008356fbe",
		Keywords:    []string{"chana masala", "chickpea curry", "chole", "garbanzo curry"},
		Calories:    180,
		Protein:     8.5,
		Carbs:       24.2,
		Fats:        6.8,
		PortionSize: "150g",
		HealthScore: 9.2,
	},
	{
		ID:          "dal-makhani",
		Name:        "Dal Makhani",
		Description: "Rich and creamy black lentil curry",
		Category:    domain.CategoryNorthIndianCurry,
		Region:      "North India",
		Image:       imageBase + "photo-1546833999-b9f581a1996d",
		Keywords:    []string{"dal makhani", "black dal", "creamy dal", "maa ki dal"},
		Calories:    250,
		Protein:     11.5,
		Carbs:       22.8,
		Fats:        12.5,
		PortionSize: "150g",
		HealthScore: 7.5,
	},
	{
		ID:          "chicken-biryani",
		Name:        "Chicken Biryani",
		Description: "Aromatic basmati rice with spiced chicken",
		Category:    domain.CategoryBiryani,
		Region:      "Hyderabad",
		Image:       imageBase + "photo-1563379091339-03246963d8bd",
		Keywords:    []string{"chicken biryani", "biryani", "chicken rice", "hyderabadi biryani"},
		Calories:    320,
		Protein:     18.5,
		Carbs:       45.2,
		Fats:        8.5,
		PortionSize: "200g",
		HealthScore: 7.0,
	},
	{
		ID:          "mutton-biryani",
		Name:        "Mutton Biryani",
		Description: "Fragrant rice with tender mutton pieces",
		Category:    domain.CategoryBiryani,
		Region:      "Lucknow",
		Image:       imageBase + "photo-1599043513900-ed6fe01d3833",
		Keywords:    []string{"mutton biryani", "lamb biryani", "goat biryani", "lucknowi biryani"},
		Calories:    380,
		Protein:     22.8,
		Carbs:       42.5,
		Fats:        12.8,
		PortionSize: "200g",
		HealthScore: 6.5,
	},
	{
		ID:          "vegetable-biryani",
		Name:        "Vegetable Biryani",
		Description: "Colorful rice dish with seasonal vegetables",
		Category:    domain.CategoryBiryani,
		Region:      "Various",
		Image:       imageBase + "photo-1596560548464-f010549b84d7",
		Keywords:    []string{"vegetable biryani", "veg biryani", "mixed vegetable rice"},
		Calories:    280,
		Protein:     8.2,
		Carbs:       52.5,
		Fats:        6.5,
		PortionSize: "200g",
		HealthScore: 8.0,
	},
	{
		ID:          "dosa",
		Name:        "Dosa",
		Description: "Crispy fermented rice and lentil crepe",
		Category:    domain.CategorySouthIndian,
		Region:      "South India",
		Image:       imageBase + "photo-1630383249896-424e482df921",
		Keywords:    []string{"dosa", "masala dosa", "plain dosa", "crispy dosa"},
		Calories:    168,
		Protein:     4.2,
		Carbs:       32.5,
		Fats:        2.8,
		PortionSize: "100g",
		HealthScore: 8.5,
	},
	{
		ID:          "idli",
		Name:        "Idli",
		Description: "Soft steamed rice and lentil cakes",
		Category:    domain.CategorySouthIndian,
		Region:      "South India",
		Image:       imageBase + "photo-1589301760014-d929f3979dbc",
		Keywords:    []string{"idli", "steamed rice cake", "idly"},
		Calories:    58,
		Protein:     2.1,
		Carbs:       12.8,
		Fats:        0.2,
		PortionSize: "50g (2 pieces)",
		HealthScore: 9.5,
	},
	{
		ID:          "sambar",
		Name:        "Sambar",
		Description: "Tangy lentil soup with vegetables",
		Category:    domain.CategorySouthIndian,
		Region:      "South India",
		Image:       imageBase + "photo-1626132647523-66f2bf0d4c71",
		Keywords:    []string{"sambar", "sambhar", "lentil soup", "dal sambar"},
		Calories:    95,
		Protein:     4.8,
		Carbs:       16.2,
		Fats:        1.5,
		PortionSize: "150ml",
		HealthScore: 9.0,
	},
	{
		ID:          "vada",
		Name:        "Medu Vada",
		Description: "Crispy fried lentil donuts",
		Category:    domain.CategorySouthIndian,
		Region:      "South India",
		Image:       imageBase + "photo-1601050690597-df0568f70950",
		Keywords:    []string{"vada", "medu vada", "medhu vada", "urad dal vada"},
		Calories:    145,
		Protein:     6.2,
		Carbs:       18.5,
		Fats:        5.8,
		PortionSize: "60g (2 pieces)",
		HealthScore: 7.0,
	},
	{
		ID:          "naan",
		Name:        "Naan",
		Description: "Soft leavened flatbread from tandoor",
		Category:    domain.CategoryIndianBread,
		Region:      "North India",
		Image:       imageBase + "photo-1513639776629-7b61b0ac49cb",
		Keywords:    []string{"naan", "garlic naan", "butter naan", "plain naan"},
		Calories:    262,
		Protein:     9.1,
		Carbs:       45.2,
		Fats:        5.8,
		PortionSize: "90g (1 piece)",
		HealthScore: 6.0,
	},
	{
		ID:          "roti",
		Name:        "Chapati/Roti",
		Description: "Whole wheat unleavened flatbread",
		Category:    domain.CategoryIndianBread,
		Region:      "All India",
		Image:       imageBase + "photo-1565299624946-b28f40a0ca4b",
		Keywords:    []string{"roti", "chapati", "phulka", "indian bread"},
		Calories:    71,
		Protein:     2.8,
		Carbs:       15.2,
		Fats:        0.4,
		PortionSize: "40g (1 piece)",
		HealthScore: 8.0,
	},
	{
		ID:          "paratha",
		Name:        "Paratha",
		Description: "Flaky layered flatbread with filling",
		Category:    domain.CategoryIndianBread,
		Region:      "North India",
		Image:       imageBase + "photo-1601050690597-df0568f70950",
		Keywords:    []string{"paratha", "aloo paratha", "stuffed paratha", "layered bread"},
		Calories:    300,
		Protein:     8.5,
		Carbs:       42.5,
		Fats:        11.2,
		PortionSize: "100g (1 piece)",
		HealthScore: 6.5,
	},
	{
		ID:          "samosa",
		Name:        "Samosa",
		Description: "Crispy triangular pastry with spiced filling",
		Category:    domain.CategoryIndianSnack,
		Region:      "All India",
		Image:       imageBase + "photo-1601050690597-df0568f70950",
		Keywords:    []string{"samosa", "samosa chaat", "aloo samosa"},
		Calories:    150,
		Protein:     3.5,
		Carbs:       18.2,
		Fats:        7.5,
		PortionSize: "50g (1 piece)",
		HealthScore: 5.5,
	},
	{
		ID:          "pakora",
		Name:        "Pakora",
		Description: "Crispy gram flour fritters with vegetables",
		Category:    domain.CategoryIndianSnack,
		Region:      "All India",
		Image:       imageBase + "photo-1626212092657-7bf476bb726b",
		Keywords:    []string{"pakora", "bhaji", "onion pakora", "vegetable fritters"},
		Calories:    165,
		Protein:     4.8,
		Carbs:       22.5,
		Fats:        6.8,
		PortionSize: "80g (4-5 pieces)",
		HealthScore: 6.0,
	},
	{
		ID:          "toor-dal",
		Name:        "Toor Dal",
		Description: "Nutritious yellow split pigeon peas",
		Category:    domain.CategoryLentils,
		Region:      "All India",
		Image:       imageBase + "photo-1546833999-b9f581a1996d",
		Keywords:    []string{"toor dal", "arhar dal", "pigeon pea", "yellow dal"},
		Calories:    120,
		Protein:     7.8,
		Carbs:       19.5,
		Fats:        1.2,
		PortionSize: "100g",
		HealthScore: 9.5,
	},
	{
		ID:          "moong-dal",
		Name:        "Moong Dal",
		Description: "Easy-to-digest split green gram",
		Category:    domain.CategoryLentils,
		Region:      "All India",
		Image:       imageBase + "photo-1546833999-b9f581a1996d",
		Keywords:    []string{"moong dal", "mung dal", "green gram", "yellow moong"},
		Calories:    105,
		Protein:     8.2,
		Carbs:       17.8,
		Fats:        0.8,
		PortionSize: "100g",
		HealthScore: 9.8,
	},
	{
		ID:          "lassi",
		Name:        "Lassi",
		Description: "Refreshing yogurt-based drink",
		Category:    domain.CategoryIndianBeverage,
		Region:      "North India",
		Image:       imageBase + "photo-1570197788417-0e82375c9371",
		Keywords:    []string{"lassi", "mango lassi", "sweet lassi", "yogurt drink"},
		Calories:    180,
		Protein:     6.5,
		Carbs:       28.5,
		Fats:        4.2,
		PortionSize: "250ml",
		HealthScore: 7.5,
	},
	{
		ID:          "chai",
		Name:        "Masala Chai",
		Description: "Aromatic spiced tea with milk",
		Category:    domain.CategoryIndianBeverage,
		Region:      "All India",
		Image:       imageBase + "photo-1571934811356-5cc061b6821f",
		Keywords:    []string{"chai", "masala chai", "indian tea", "spiced tea"},
		Calories:    60,
		Protein:     2.2,
		Carbs:       8.5,
		Fats:        2.8,
		PortionSize: "150ml",
		HealthScore: 7.0,
	},
	{
		ID:          "basmati-rice",
		Name:        "Basmati Rice",
		Description: "Aromatic long-grain rice variety",
		Category:    domain.CategoryGrain,
		Region:      "North India",
		Image:       imageBase + "photo-1536304929831-ee1ca9d44906",
		Keywords:    []string{"basmati rice", "long grain rice", "aromatic rice"},
		Calories:    150,
		Protein:     3.8,
		Carbs:       33.2,
		Fats:        0.4,
		PortionSize: "100g cooked",
		HealthScore: 7.0,
	},
	{
		ID:          "turmeric",
		Name:        "Turmeric (Haldi)",
		Description: "Golden anti-inflammatory spice",
		Category:    domain.CategorySpice,
		Region:      "All India",
		Image:       imageBase + "photo-1615485500704-8e990f9900f7",
		Keywords:    []string{"turmeric", "haldi", "yellow spice", "curcumin"},
		Calories:    312,
		Protein:     9.7,
		Carbs:       67.1,
		Fats:        3.2,
		PortionSize: "100g",
		HealthScore: 9.8,
	},
}

// Default returns a catalog built from DefaultRecords
func Default() *Catalog {
	return MustNew(DefaultRecords)
}
