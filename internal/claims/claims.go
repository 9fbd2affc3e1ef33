package claims

// Custom defines extended custom claims on top of the registered claims
// provided by go-jose.
type Custom struct {
	Nonce string `json:"nonce"`
}
