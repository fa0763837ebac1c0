package impl

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Code computes the product key as hex encoded SHA256(name|communityID|price).
// Both numeric fields follow the name, so the encoding is unambiguous.
func Code(communityID uint64, name string, price uint64) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", name, communityID, price)))
	return hex.EncodeToString(hash[:])
}

func (s srv) GetCode(communityID uint64, name string, price uint64) string {
	return Code(communityID, name, price)
}
