package types

import "sort"

// requiredStorageTemperatures maps a refrigerated product type to the
// minimum temperature, in degrees Celsius, a container must be set to in
// order to carry it. The table is fixed for the lifetime of the process.
var requiredStorageTemperatures = map[string]float64{
	"Bananas":      13.3,
	"Chocolate":    18,
	"Fish":         2,
	"Meat":         -15,
	"Ice cream":    -18,
	"Frozen pizza": -30,
	"Cheese":       7.2,
	"Sausages":     5,
	"Butter":       20.5,
	"Eggs":         19,
}

// RequiredStorageTemperature returns the minimum storage temperature for the
// given product type. An unrecognized product type fails with
// *UnknownProductError.
func RequiredStorageTemperature(productType string) (float64, error) {
	temp, ok := requiredStorageTemperatures[productType]
	if !ok {
		return 0, &UnknownProductError{Product: productType}
	}
	return temp, nil
}

// KnownProducts returns the product types present in the storage temperature
// table, sorted alphabetically.
func KnownProducts() []string {
	products := make([]string, 0, len(requiredStorageTemperatures))
	for p := range requiredStorageTemperatures {
		products = append(products, p)
	}
	sort.Strings(products)
	return products
}
