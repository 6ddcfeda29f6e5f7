package models

import "github.com/shopspring/decimal"

// DefaultBudget is the budget used on first run and after a reset.
var DefaultBudget = decimal.NewFromInt(30000)

// NotAvailable is the display and grouping label for empty optional fields.
const NotAvailable = "N/A"

// DefaultPurposes seeds the purpose vocabulary used for autocompletion.
var DefaultPurposes = []string{
	"Electricity charges", "Milk charges", "Maid charges", "Petrol", "Vegetables",
	"Medicine charges", "Metro charges", "Bus charges", "Travelling charges", "Bus pass",
	"Stationary", "Water can", "Porter charges", "Rapido charges", "Auto charges",
	"Extra amount for auto", "Uber charges", "Maid charges (SSSSDP)", "Electricity charges (SSSSDP)",
	"Internet charges (SSSSDP)", "Flowers & Garland", "Fruits", "Bike repair", "Mixer repair",
	"Motor repair", "Xerox", "Colour Xerox", "Bank document xerox", "Trust document xerox",
	"Chappal", "Shoes", "Sandal", "Socks", "Kerchief", "Underwear", "Baniyan", "Shirt",
	"T-shirt", "Pants", "White dress", "Track pants", "Opticals", "Exam fee", "Record books",
}

// DefaultShops seeds the shop vocabulary used for autocompletion.
var DefaultShops = []string{
	"Mvsr college", "Sri Indu College", "Anurag college", "Resonance", "D Mart", "Decathlon",
	"Vandana shopping mall", "Trends", "Amazon shopping", "Flipkart", "Apollo pharmacy",
	"Pharma hub", "MedPlus", "Vijayalakshmi diagnostics", "Soujanya stationery",
	"Venkateswara stationery", "Lahari xerox", "Tirumala xerox", "Pramila xerox", "A1 computers",
}

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)
