package services

// UOMOptions is the list of Unit of Measurement options offered in the import
// template's Unit column.
var UOMOptions = []string{
	"Nos",
	"Sqm",
	"Sqft",
	"Rmt",
	"Cum",
	"Kg",
	"MT",
	"Lot",
	"Set",
	"Ltr",
	"Pair",
	"Bag",
	"Box",
	"Roll",
	"Bundle",
}
