package models

// GarmentTypes is the fixed catalog the shop stitches. Prices for each live
// in Settings.GarmentPrices; "General" is the fallback for anything else.
var GarmentTypes = []string{
	"Shirt",
	"Pant",
	"Girl's Dress",
	"School Uniform (Boy)",
	"School Uniform (Girl)",
	"Police Uniform",
	"Blouse",
	"Salwar Kameez",
	"General",
}

// GarmentMeasurementFields lists the measurement field ids recorded per
// garment type, in the order the shop takes them.
var GarmentMeasurementFields = map[string][]string{
	"Shirt":                 {"chest", "waist", "shoulder", "length", "sleeve", "neck"},
	"Pant":                  {"waist", "length", "inseam", "thigh", "groin", "bottom"},
	"Girl's Dress":          {"chest", "waist", "shoulder", "length", "armhole", "neck"},
	"School Uniform (Boy)":  {"shirtChest", "shirtLength", "pantWaist", "pantLength"},
	"School Uniform (Girl)": {"chest", "waist", "skirtLength", "shoulder"},
	"Police Uniform":        {"chest", "waist", "shoulder", "shirtLength", "pantLength", "bicep"},
	"Blouse":                {"chest", "waist", "shoulder", "length", "sleeve", "frontNeck", "backNeck", "armhole"},
	"Salwar Kameez":         {"topLength", "chest", "waist", "hip", "shoulder", "sleeve", "bottomLength", "bottomWaist"},
	"General":               {"chest", "waist", "length"},
}
