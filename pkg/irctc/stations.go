package irctc

import "strings"

// stationCodes maps city names to their primary railway station code.
var stationCodes = map[string]string{
	// Delhi & NCR
	"delhi":             "NDLS",
	"new delhi":         "NDLS",
	"old delhi":         "DLI",
	"hazrat nizamuddin": "NZM",
	"nizamuddin":        "NZM",
	"anand vihar":       "ANVT",

	// Mumbai & region
	"mumbai":         "CSTM",
	"bombay":         "CSTM",
	"mumbai central": "BCT",
	"bandra":         "BDTS",
	"dadar":          "DR",
	"thane":          "TNA",

	// Bangalore & Karnataka
	"bangalore":   "SBC",
	"bengaluru":   "SBC",
	"yeshwantpur": "YPR",
	"mysore":      "MYS",
	"mysuru":      "MYS",
	"hubli":       "UBL",
	"mangalore":   "MAQ",

	// Chennai & Tamil Nadu
	"chennai":          "MAS",
	"madras":           "MAS",
	"chennai egmore":   "MS",
	"coimbatore":       "CBE",
	"madurai":          "MDU",
	"trichy":           "TPJ",
	"tiruchirappalli":  "TPJ",
	"salem":            "SA",
	"vellore":          "VLR",
	"katpadi":          "KPD",
	"tirupati":         "TPTY",
	"kanyakumari":      "CAPE",

	// Kolkata & East
	"kolkata":        "HWH",
	"calcutta":       "HWH",
	"howrah":         "HWH",
	"sealdah":        "SDAH",
	"new jalpaiguri": "NJP",
	"patna":          "PNBE",
	"guwahati":       "GHY",
	"bhubaneswar":    "BBS",
	"puri":           "PURI",

	// Hyderabad & Telangana
	"hyderabad":    "HYB",
	"secunderabad": "SC",
	"warangal":     "WL",

	// Pune & Maharashtra
	"pune":       "PUNE",
	"nagpur":     "NGP",
	"aurangabad": "AWB",
	"nashik":     "NK",
	"solapur":    "SUR",

	// Gujarat
	"ahmedabad": "ADI",
	"surat":     "ST",
	"vadodara":  "BRC",
	"baroda":    "BRC",
	"rajkot":    "RJT",

	// Rajasthan
	"jaipur":  "JP",
	"jodhpur": "JU",
	"udaipur": "UDZ",
	"ajmer":   "AII",
	"bikaner": "BKN",
	"kota":    "KOTA",

	// Goa
	"goa":           "MAO",
	"madgaon":       "MAO",
	"margao":        "MAO",
	"vasco da gama": "VSG",

	// Uttar Pradesh
	"lucknow":   "LKO",
	"kanpur":    "CNB",
	"varanasi":  "BSB",
	"agra":      "AGC",
	"allahabad": "PRYJ",
	"prayagraj": "PRYJ",
	"gorakhpur": "GKP",

	// Punjab & Haryana
	"amritsar":   "ASR",
	"ludhiana":   "LDH",
	"chandigarh": "CDG",
	"ambala":     "UMB",

	// Madhya Pradesh
	"bhopal":   "BPL",
	"indore":   "INDB",
	"jabalpur": "JBP",
	"gwalior":  "GWL",
	"ujjain":   "UJN",

	// Kerala
	"thiruvananthapuram": "TVC",
	"trivandrum":         "TVC",
	"kochi":              "ERS",
	"cochin":             "ERS",
	"ernakulam":          "ERS",
	"kozhikode":          "CLT",
	"calicut":            "CLT",
	"thrissur":           "TCR",

	// Andhra Pradesh
	"vijayawada":    "BZA",
	"visakhapatnam": "VSKP",
	"vizag":         "VSKP",
	"guntur":        "GNT",

	// Uttarakhand & Himachal
	"dehradun":  "DDN",
	"haridwar":  "HW",
	"rishikesh": "RKSH",
	"shimla":    "SML",

	// Others
	"pondicherry": "PDY",
	"puducherry":  "PDY",
	"cuttack":     "CTC",
	"jammu":       "JAT",
}

// StationCode resolves a city name to a station code, falling back to the
// first four letters uppercased for unknown cities.
func StationCode(cityName string) string {
	cityLower := strings.ToLower(strings.TrimSpace(cityName))
	if code, ok := stationCodes[cityLower]; ok {
		return code
	}
	upper := strings.ToUpper(cityName)
	if len(upper) > 4 {
		upper = upper[:4]
	}
	return upper
}
