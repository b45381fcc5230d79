package amadeus

import "strings"

// cityCodes maps common Indian city names to IATA codes. Hill stations and
// pilgrimage towns map to their nearest airport.
var cityCodes = map[string]string{
	"delhi":              "DEL",
	"new delhi":          "DEL",
	"mumbai":             "BOM",
	"bangalore":          "BLR",
	"bengaluru":          "BLR",
	"chennai":            "MAA",
	"kolkata":            "CCU",
	"hyderabad":          "HYD",
	"pune":               "PNQ",
	"ahmedabad":          "AMD",
	"jaipur":             "JAI",
	"goa":                "GOI",
	"kochi":              "COK",
	"cochin":             "COK",
	"lucknow":            "LKO",
	"thiruvananthapuram": "TRV",
	"trivandrum":         "TRV",
	"chandigarh":         "IXC",
	"indore":             "IDR",
	"bhubaneswar":        "BBI",
	"raipur":             "RPR",
	"ranchi":             "IXR",
	"patna":              "PAT",
	"varanasi":           "VNS",
	"banaras":            "VNS",
	"agra":               "AGR",
	"srinagar":           "SXR",
	"amritsar":           "ATQ",
	"guwahati":           "GAU",
	"mangalore":          "IXE",
	"vijayawada":         "VGA",
	"coimbatore":         "CJB",
	"madurai":            "IXM",
	"visakhapatnam":      "VTZ",
	"vizag":              "VTZ",
	"nagpur":             "NAG",
	"udaipur":            "UDR",
	"jodhpur":            "JDH",
	"shimla":             "SLV",
	"manali":             "KUU",
	"leh":                "IXL",
	"port blair":         "IXZ",
	"imphal":             "IMF",
	"aizawl":             "AJL",
	"pondicherry":        "PNY",
	"puducherry":         "PNY",
	"dehradun":           "DED",
	"mussoorie":          "DED",
	"rishikesh":          "DED",
	"haridwar":           "DED",
	"nainital":           "PGH",
	"darjeeling":         "IXB",
	"gangtok":            "IXB",
	"ooty":               "CJB",
	"kodaikanal":         "IXM",
	"munnar":             "COK",
	"mcleodganj":         "DHM",
	"dharamshala":        "DHM",
	"andaman":            "IXZ",
	"varkala":            "TRV",
	"kovalam":            "TRV",
	"alleppey":           "COK",
	"alappuzha":          "COK",
	"tirupati":           "TIR",
	"shirdi":             "SAG",
	"puri":               "BBI",
	"dwarka":             "AMD",
	"ajmer":              "KQH",
	"mathura":            "AGR",
	"vrindavan":          "AGR",
	"surat":              "STV",
	"rajkot":             "RAJ",
	"vadodara":           "BDQ",
	"baroda":             "BDQ",
	"mysore":             "MYQ",
	"mysuru":             "MYQ",
	"aurangabad":         "IXU",
	"siliguri":           "IXB",
	"gwalior":            "GWL",
	"bhopal":             "BHO",
	"jabalpur":           "JLR",
	"jammu":              "IXJ",
	"bodh gaya":          "GAY",
}

// CityCode resolves a city name to its IATA code.
func CityCode(cityName string) (string, bool) {
	code, ok := cityCodes[strings.ToLower(strings.TrimSpace(cityName))]
	return code, ok
}
