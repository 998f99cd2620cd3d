package entity

// TransferDocument is the JSON shape of a data source:
// { "template": { "content": [ Booking, ... ] } }
type TransferDocument struct {
	Template *TransferTemplate `json:"template"`
}

type TransferTemplate struct {
	Content []Booking `json:"content"`
}
