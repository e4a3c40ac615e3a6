package schema

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Choice category keys, referenced by Field.Choices bindings.
const (
	CategoryClientEmails        = "Client_Emails"
	CategoryPaymentMethods      = "Payment_Methods"
	CategoryCities              = "Cities"
	CategoryCairoZones          = "Cairo_Zones"
	CategoryAlexandriaZones     = "Alexandria_Zones"
	CategoryGizaZones           = "Giza_Zones"
	CategoryPackageDescriptions = "Package_Descriptions"
	CategoryPackageValues       = "Package_Values"
	CategoryLargeOrderOptions   = "Large_Order_Options"
	CategoryStreetExamples      = "Street_Examples"
	CategoryBuildingDetails     = "Building_Details"
)

// Category is one named, ordered list of allowed values, rendered as one
// column on the Choices sheet.
type Category struct {
	// Key is the stable identifier referenced by field bindings.
	Key string
	// Values are the allowed entries, in display order.
	Values []string
}

// Header returns the display header for the category column.
func (c Category) Header() string {
	return strings.ReplaceAll(c.Key, "_", " ")
}

// SourceRange returns the absolute cell range bounding the category's
// values when rendered at the given 1-based column on the Choices sheet,
// e.g. "$C$2:$C$11" for a ten-value category in the third column.
func (c Category) SourceRange(col int) (string, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("$%s$2:$%s$%d", name, name, len(c.Values)+1), nil
}

// Contains reports whether v is one of the category's values.
func (c Category) Contains(v string) bool {
	for _, value := range c.Values {
		if value == v {
			return true
		}
	}
	return false
}

// Categories returns all choice categories in Choices-sheet column order.
// Both the Choices sheet layout and the dropdown source ranges derive
// from this ordering and from each category's value count, so the two
// cannot drift apart when a category is reordered or resized.
func Categories() []Category {
	return []Category{
		{Key: CategoryClientEmails, Values: []string{
			"admin@shuhna.net",
			"testclient@flash.com",
			"client@flash.com",
		}},
		{Key: CategoryPaymentMethods, Values: []string{
			"COD",
			"Transfer",
			"Wallet",
		}},
		{Key: CategoryCities, Values: []string{
			"Cairo",
			"Alexandria",
			"Giza",
			"Sharm El Sheikh",
			"Hurghada",
			"Luxor",
			"Aswan",
			"Port Said",
			"Suez",
			"Ismailia",
		}},
		{Key: CategoryCairoZones, Values: []string{
			"Nasr City",
			"Heliopolis",
			"Maadi",
			"Zamalek",
			"Downtown",
			"Dokki",
			"Mohandessin",
			"New Cairo",
			"6th of October",
			"Shoubra",
		}},
		{Key: CategoryAlexandriaZones, Values: []string{
			"Downtown",
			"Sidi Gaber",
			"Montaza",
			"Smouha",
			"Miami",
			"Gleem",
			"Sporting",
			"Stanley",
			"Camp Cesar",
			"Baccos",
		}},
		{Key: CategoryGizaZones, Values: []string{
			"Dokki",
			"Mohandessin",
			"Agouza",
			"Haram",
			"6th of October",
			"Sheikh Zayed",
			"Smart Village",
			"Faisal",
			"Imbaba",
			"Bulaq",
		}},
		{Key: CategoryPackageDescriptions, Values: []string{
			"Electronics - Smartphone",
			"Electronics - Laptop",
			"Electronics - Tablet",
			"Electronics - Headphones",
			"Electronics - Camera",
			"Clothing - T-Shirt",
			"Clothing - Jeans",
			"Clothing - Shoes",
			"Clothing - Dress",
			"Clothing - Jacket",
			"Books - Novel",
			"Books - Textbook",
			"Books - Magazine",
			"Home & Garden - Kitchen Appliances",
			"Home & Garden - Furniture",
			"Home & Garden - Decor",
			"Food & Beverages - Snacks",
			"Food & Beverages - Drinks",
			"Documents - Legal Papers",
			"Documents - Certificates",
			"Gifts - Birthday Gift",
			"Gifts - Wedding Gift",
			"Medical - Medication",
			"Beauty - Cosmetics",
			"Sports - Equipment",
		}},
		{Key: CategoryPackageValues, Values: []string{
			"50", "100", "150", "200", "250", "300", "400",
			"500", "750", "1000", "1500", "2000", "3000", "5000",
		}},
		{Key: CategoryLargeOrderOptions, Values: []string{
			"TRUE",
			"FALSE",
		}},
		{Key: CategoryStreetExamples, Values: []string{
			"123 Main St",
			"456 Oak Ave",
			"789 Pine St",
			"321 Cedar Ln",
			"654 Elm Rd",
			"987 Maple Dr",
			"147 Birch Way",
			"258 Willow Ct",
			"369 Palm Blvd",
			"741 Rose Ave",
		}},
		{Key: CategoryBuildingDetails, Values: []string{
			"Apt 101",
			"Floor 3",
			"Building 5",
			"Suite 201",
			"Unit 12",
			"Villa 25",
			"Office 304",
			"Shop 15",
			"Penthouse",
			"Ground Floor",
		}},
	}
}

// CategoryByKey returns the category with the given key and its 1-based
// column on the Choices sheet.
func CategoryByKey(key string) (Category, int, bool) {
	for i, c := range Categories() {
		if c.Key == key {
			return c, i + 1, true
		}
	}
	return Category{}, 0, false
}
