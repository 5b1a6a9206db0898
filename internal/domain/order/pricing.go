package order

// testPrices is the catalog price per test code. Unknown codes price at zero.
var testPrices = map[string]float64{
	"cbc":        50,
	"lipid":      100,
	"liver":      120,
	"kidney":     120,
	"urinalysis": 40,
	"glucose":    30,
	"thyroid":    150,
}

// testNames maps catalog codes to their display names.
var testNames = map[string]string{
	"cbc":        "Complete Blood Count",
	"lipid":      "Lipid Profile",
	"liver":      "Liver Function Test",
	"kidney":     "Kidney Function Test",
	"urinalysis": "Urinalysis",
	"glucose":    "Glucose Test",
	"thyroid":    "Thyroid Panel",
}

// PriceOf sums the catalog price of each test code. Codes missing from
// the catalog contribute zero rather than failing the order.
func PriceOf(tests []string) float64 {
	var total float64
	for _, code := range tests {
		total += testPrices[code]
	}
	return total
}

// DisplayName returns the human-readable name for a test code, falling
// back to the code itself when it is not in the catalog.
func DisplayName(code string) string {
	if name, ok := testNames[code]; ok {
		return name
	}
	return code
}
