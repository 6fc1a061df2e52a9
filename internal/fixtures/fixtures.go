// Package fixtures holds the static reference data used to synthesize
// realistic catalog entities: per-category product archetypes with price
// bands, narrative description fragments, and the name pools for users and
// brand tokens. Pure data, read-only during synthesis.
package fixtures

import "github.com/shopspring/decimal"

// Archetype is a per-category product template: a base name, the variant
// names it combines with, and the price band its products are drawn from.
type Archetype struct {
	BaseName string
	Variants []string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

// CategoryFixture bundles everything needed to synthesize one category and
// its products.
type CategoryFixture struct {
	Name        string
	Description string
	Archetypes  []Archetype
	Fragments   []string
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func arch(base string, min, max string, variants ...string) Archetype {
	return Archetype{
		BaseName: base,
		Variants: variants,
		MinPrice: price(min),
		MaxPrice: price(max),
	}
}

var categories = []CategoryFixture{
	{
		Name:        "Electronics",
		Description: "Electronic devices and gadgets",
		Archetypes: []Archetype{
			arch("Laptop", "450.00", "3200.00", "Pro", "Air", "Gaming", "Studio", "Flex"),
			arch("Smartphone", "180.00", "1500.00", "Mini", "Plus", "Ultra", "Lite", "Max"),
			arch("Monitor", "110.00", "900.00", "HD", "4K", "Curved", "Portable", "Ultrawide"),
			arch("Headphones", "25.00", "450.00", "Wireless", "Studio", "Sport", "Noise-Cancelling", "Kids"),
			arch("Tablet", "120.00", "1100.00", "Mini", "Pro", "Note", "Go", "Plus"),
			arch("Keyboard", "15.00", "220.00", "Mechanical", "Compact", "Ergonomic", "Wireless", "RGB"),
		},
		Fragments: []string{
			"Engineered for performance with a focus on everyday reliability.",
			"Features the latest generation chipset and an all-day battery.",
			"Slim, lightweight design that travels as well as it works.",
			"Backed by a two-year warranty and free firmware updates.",
			"Connects seamlessly with the rest of your devices.",
			"Built with recycled aluminum and plastic-free packaging.",
		},
	},
	{
		Name:        "Clothing & Accessories",
		Description: "Garments, footwear and wardrobe accessories",
		Archetypes: []Archetype{
			arch("T-Shirt", "8.00", "45.00", "Classic", "Slim", "Oversized", "Graphic", "Vintage"),
			arch("Jeans", "25.00", "140.00", "Slim", "Straight", "Relaxed", "Bootcut", "Raw"),
			arch("Jacket", "40.00", "380.00", "Bomber", "Denim", "Rain", "Puffer", "Leather"),
			arch("Sneakers", "35.00", "250.00", "Runner", "Court", "Retro", "Trail", "Knit"),
			arch("Backpack", "20.00", "160.00", "Daypack", "Laptop", "Travel", "Roll-Top", "Mini"),
			arch("Cap", "9.00", "40.00", "Snapback", "Trucker", "Dad", "Beanie", "Bucket"),
		},
		Fragments: []string{
			"Cut from soft, durable fabric that holds its shape wash after wash.",
			"A wardrobe staple that pairs with just about anything.",
			"Pre-shrunk and colorfast, true to size.",
			"Designed in-house and produced in certified factories.",
			"Finished with reinforced seams for everyday wear.",
		},
	},
	{
		Name:        "Home & Garden",
		Description: "Furniture, decor and garden equipment",
		Archetypes: []Archetype{
			arch("Sofa", "300.00", "2200.00", "Two-Seater", "Corner", "Sleeper", "Modular", "Loveseat"),
			arch("Table", "60.00", "850.00", "Dining", "Coffee", "Side", "Folding", "Standing"),
			arch("Chair", "30.00", "600.00", "Dining", "Office", "Lounge", "Rocking", "Stacking"),
			arch("Lamp", "15.00", "240.00", "Floor", "Desk", "Pendant", "Reading", "Smart"),
			arch("Rug", "25.00", "500.00", "Wool", "Flatweave", "Shag", "Runner", "Outdoor"),
		},
		Fragments: []string{
			"Assembles in minutes with the included tools.",
			"Solid wood frame with a stain-resistant finish.",
			"Brings warmth and character to any room.",
			"Easy to clean and safe for homes with pets.",
			"Weather-treated for indoor and outdoor use.",
		},
	},
	{
		Name:        "Sports",
		Description: "Sporting goods and fitness equipment",
		Archetypes: []Archetype{
			arch("Ball", "10.00", "80.00", "Match", "Training", "Beach", "Junior", "Pro"),
			arch("Racket", "25.00", "320.00", "Tennis", "Badminton", "Squash", "Padel", "Junior"),
			arch("Dumbbell Set", "30.00", "400.00", "Adjustable", "Hex", "Rubber", "Chrome", "Studio"),
			arch("Bicycle", "180.00", "2800.00", "Road", "Mountain", "City", "Gravel", "Folding"),
			arch("Yoga Mat", "12.00", "95.00", "Standard", "Travel", "Thick", "Cork", "Aligned"),
		},
		Fragments: []string{
			"Tested by amateur and professional athletes alike.",
			"Grippy, durable surface that stands up to daily sessions.",
			"Lightweight construction without sacrificing stability.",
			"Meets official size and weight regulations.",
			"Includes a carry bag and quick-start training guide.",
		},
	},
	{
		Name:        "Books",
		Description: "Printed and digital books",
		Archetypes: []Archetype{
			arch("Novel", "6.00", "30.00", "Paperback", "Hardcover", "Illustrated", "Collector's", "Pocket"),
			arch("Cookbook", "12.00", "55.00", "Everyday", "Baking", "Vegetarian", "Regional", "Quick"),
			arch("Atlas", "18.00", "90.00", "World", "Historical", "Road", "Student", "Illustrated"),
			arch("Manual", "10.00", "70.00", "Field", "Repair", "Owner's", "Technical", "Pocket"),
			arch("Comic", "4.00", "25.00", "Single Issue", "Trade", "Omnibus", "Annual", "Special"),
		},
		Fragments: []string{
			"A page-turner praised by critics and readers alike.",
			"Printed on acid-free paper with a sewn binding.",
			"Includes a foreword by the author and bonus material.",
			"Perfect for gifting or rounding out a collection.",
			"Translated into more than twenty languages.",
		},
	},
	{
		Name:        "Toys",
		Description: "Toys and games for children",
		Archetypes: []Archetype{
			arch("Puzzle", "8.00", "45.00", "500-Piece", "1000-Piece", "Wooden", "3D", "Junior"),
			arch("Building Set", "15.00", "180.00", "Starter", "Castle", "Space", "City", "Technic"),
			arch("Plush", "7.00", "50.00", "Bear", "Dino", "Bunny", "Giant", "Mini"),
			arch("Board Game", "12.00", "90.00", "Family", "Strategy", "Party", "Travel", "Classic"),
			arch("Toy Car", "5.00", "60.00", "Race", "Pull-Back", "Die-Cast", "RC", "Vintage"),
		},
		Fragments: []string{
			"Encourages creativity and fine motor skills.",
			"Made from non-toxic, child-safe materials.",
			"Hours of screen-free fun for the whole family.",
			"Suitable for ages three and up.",
			"Compact box that stores everything between sessions.",
		},
	},
	{
		Name:        "Groceries",
		Description: "Food and pantry products",
		Archetypes: []Archetype{
			arch("Cereal", "2.50", "9.00", "Honey", "Granola", "Whole Grain", "Chocolate", "Fruit & Nut"),
			arch("Coffee", "4.00", "28.00", "Espresso", "Filter", "Decaf", "Single Origin", "Instant"),
			arch("Olive Oil", "5.00", "35.00", "Extra Virgin", "Organic", "Infused", "Cold-Pressed", "Blend"),
			arch("Snack Mix", "1.80", "12.00", "Salted", "Spicy", "Trail", "Protein", "Sweet"),
			arch("Preserve", "2.20", "14.00", "Strawberry", "Apricot", "Orange", "Fig", "Raspberry"),
		},
		Fragments: []string{
			"Sourced from family farms and packed at peak freshness.",
			"No artificial colors, flavors or preservatives.",
			"Resealable packaging keeps every serving crisp.",
			"A pantry favorite for quick breakfasts and snacks.",
			"Certified organic and fully traceable to origin.",
		},
	},
	{
		Name:        "Beauty & Health",
		Description: "Personal care and wellness products",
		Archetypes: []Archetype{
			arch("Face Cream", "6.00", "85.00", "Day", "Night", "Anti-Age", "Hydrating", "SPF"),
			arch("Shampoo", "3.50", "32.00", "Repair", "Volume", "Color-Safe", "Anti-Dandruff", "2-in-1"),
			arch("Perfume", "18.00", "220.00", "Eau de Parfum", "Eau de Toilette", "Travel", "Intense", "Fresh"),
			arch("Soap", "2.00", "15.00", "Bar", "Liquid", "Charcoal", "Oat", "Unscented"),
			arch("Vitamin Pack", "8.00", "60.00", "Daily", "Immune", "Energy", "Sleep", "Sport"),
		},
		Fragments: []string{
			"Dermatologically tested and suitable for sensitive skin.",
			"Infused with natural botanicals and cold-pressed oils.",
			"Cruelty-free and made without parabens or sulfates.",
			"Absorbs quickly with no greasy residue.",
			"A little goes a long way; one bottle lasts for months.",
		},
	},
	{
		Name:        "Automotive",
		Description: "Vehicle accessories and spare parts",
		Archetypes: []Archetype{
			arch("Tire", "45.00", "320.00", "All-Season", "Winter", "Performance", "Touring", "Off-Road"),
			arch("Motor Oil", "12.00", "75.00", "Synthetic", "High-Mileage", "Diesel", "Blend", "Racing"),
			arch("Car Battery", "60.00", "280.00", "Standard", "AGM", "Start-Stop", "Heavy Duty", "Compact"),
			arch("Air Filter", "8.00", "55.00", "Engine", "Cabin", "Performance", "Washable", "OEM"),
			arch("Cleaner Kit", "9.00", "65.00", "Interior", "Wheel", "Glass", "Detailing", "Wax"),
		},
		Fragments: []string{
			"Meets or exceeds original manufacturer specifications.",
			"Fits a wide range of makes and models.",
			"Extends service intervals and protects in extreme temperatures.",
			"Straightforward installation with common hand tools.",
			"Road-tested for thousands of miles before release.",
		},
	},
	{
		Name:        "Pets",
		Description: "Products for pets and their owners",
		Archetypes: []Archetype{
			arch("Collar", "5.00", "45.00", "Reflective", "Leather", "Padded", "GPS", "Puppy"),
			arch("Leash", "6.00", "50.00", "Retractable", "Rope", "Hands-Free", "Double", "Training"),
			arch("Pet Food", "8.00", "90.00", "Puppy", "Adult", "Senior", "Grain-Free", "Salmon"),
			arch("Pet Bed", "15.00", "130.00", "Orthopedic", "Donut", "Cooling", "Cave", "Travel"),
			arch("Chew Toy", "3.00", "25.00", "Rope", "Rubber", "Squeaky", "Dental", "Plush"),
		},
		Fragments: []string{
			"Loved by picky eaters and recommended by veterinarians.",
			"Machine washable cover with a water-resistant base.",
			"Tough enough for power chewers.",
			"Sized options for small, medium and large breeds.",
			"Formulated with real meat as the first ingredient.",
		},
	},
}

// Brands is the pool of brand-like tokens appended to product names.
var Brands = []string{
	"Aurora", "Borealis", "Cinder", "Drift", "Ember", "Fable", "Glacier",
	"Harbor", "Ivory", "Juniper", "Kestrel", "Lumen", "Meridian", "Nimbus",
	"Onyx", "Pioneer", "Quartz", "Ridge", "Summit", "Terra", "Umbra",
	"Vertex", "Willow", "Zenith",
}

// GivenNames and FamilyNames are the pools user full names are drawn from.
var GivenNames = []string{
	"Ada", "Bruno", "Carla", "Diego", "Elena", "Felix", "Greta", "Hugo",
	"Irene", "Jonas", "Karla", "Lucas", "Marta", "Nico", "Olivia", "Pablo",
	"Quinn", "Rosa", "Samuel", "Teresa", "Ursula", "Victor", "Wanda", "Xavier",
}

var FamilyNames = []string{
	"Alvarez", "Becker", "Castro", "Duarte", "Esposito", "Fischer", "Garcia",
	"Herrera", "Ibanez", "Jimenez", "Keller", "Lopez", "Morales", "Navarro",
	"Ortega", "Paredes", "Quintana", "Rios", "Silva", "Torres", "Urbina",
	"Vargas", "Weber", "Zamora",
}

// Categories returns the full fixture set, one entry per catalog category.
func Categories() []CategoryFixture {
	return categories
}

// ByName returns the fixture for the named category, or false when the
// category is not part of the fixture set.
func ByName(name string) (CategoryFixture, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryFixture{}, false
}
