package domain

import "fmt"

// Role distinguishes the single issuing account from the receiving accounts.
type Role string

const (
	RoleIssuer   Role = "ISSUER"
	RoleReceiver Role = "RECEIVER"
)

// Keypair is a raw testnet keypair. The secret key is sensitive: it is owned
// by the request that created it and never persisted beyond the response.
type Keypair struct {
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
}

// Identity is a provisioned account. The JSON field names are the legacy
// wire contract the browser client depends on.
type Identity struct {
	ID        string `json:"id,omitempty"` // "Receiver 1", ... empty for the issuer
	Role      Role   `json:"-"`
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
}

// Label returns the ordinal id when set, otherwise the public key.
func (i Identity) Label() string {
	if i.ID != "" {
		return i.ID
	}
	return i.PublicKey
}

// AccountSet is one issuer plus its ordinal-tagged receivers.
type AccountSet struct {
	Issuer    Identity   `json:"issuer"`
	Receivers []Identity `json:"receivers"`
}

// All returns the issuer followed by the receivers.
func (s *AccountSet) All() []Identity {
	out := make([]Identity, 0, len(s.Receivers)+1)
	out = append(out, s.Issuer)
	out = append(out, s.Receivers...)
	return out
}

// PublicKeys returns the issuer's key followed by the receivers', in order.
func (s *AccountSet) PublicKeys() []string {
	keys := make([]string, 0, len(s.Receivers)+1)
	keys = append(keys, s.Issuer.PublicKey)
	for _, r := range s.Receivers {
		keys = append(keys, r.PublicKey)
	}
	return keys
}

// ReceiverID builds the stable ordinal id for the nth receiver (1-based).
func ReceiverID(n int) string {
	return fmt.Sprintf("Receiver %d", n)
}
