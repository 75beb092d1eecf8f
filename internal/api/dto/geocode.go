package dto

type GeocodeRequest struct {
	Address string `json:"address"`
}

type GeocodeResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
