package dto

// Request bodies use the camelCase field names of the legacy wire contract.

// CreateAssetRequest is the body of POST /create-asset.
type CreateAssetRequest struct {
	IssuerSecret string `json:"issuerSecret" binding:"required"`
	AssetCode    string `json:"assetCode"`
	Amount       string `json:"amount"`
}

// DepositTokenRequest is the body of POST /deposit-token.
type DepositTokenRequest struct {
	IssuerSecret         string `json:"issuerSecret" binding:"required"`
	DestinationPublicKey string `json:"destinationPublicKey"`
	AssetCode            string `json:"assetCode"`
	Amount               string `json:"amount"`
}

// WithdrawTokenRequest is the body of POST /withdraw-token.
type WithdrawTokenRequest struct {
	SourceSecret    string `json:"sourceSecret" binding:"required"`
	IssuerPublicKey string `json:"issuerPublicKey"`
	AssetCode       string `json:"assetCode"`
	Amount          string `json:"amount"`
}
