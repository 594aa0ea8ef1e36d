package customer

import "encoding/json"

// Marshal encodes customers as the pretty-printed JSON array used by the
// storage file.
func Marshal(customers []Customer) ([]byte, error) {
	if customers == nil {
		customers = []Customer{}
	}
	return json.MarshalIndent(customers, "", "  ")
}

// Unmarshal decodes a JSON array of customers. Field names match without
// regard to case.
func Unmarshal(data []byte) ([]Customer, error) {
	var customers []Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []Customer{}
	}
	return customers, nil
}
