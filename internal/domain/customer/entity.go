package customer

// Customer is a billable location looked up by the geofence value reported
// for a device.
type Customer struct {
	Key        string
	Name       string
	Address    string
	HourlyRate float64
	Assignment string
}

// Synthetic returns the fallback record used when a geofence value matches no
// configured customer: the raw key doubles as the name, rate is zero.
func Synthetic(key string) Customer {
	return Customer{
		Key:  key,
		Name: key,
	}
}
