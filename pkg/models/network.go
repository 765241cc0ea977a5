// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChainID keeps the literal text of the chainId field so CHAIN_ID reproduces it exactly.
// Both JSON numbers and JSON strings are accepted.
type ChainID string

func (c *ChainID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case json.Number:
		*c = ChainID(t.String())
	case string:
		*c = ChainID(t)
	default:
		return fmt.Errorf("chainId must be a number or a string, got %s", string(b))
	}
	return nil
}

func (c ChainID) String() string {
	return string(c)
}

// NetworkConfig is the content of deploy-config/<network>.json
type NetworkConfig struct {
	ChainID         ChainID `json:"chainId"`
	RPCURL          string  `json:"rpcUrl"`
	VerifierURL     string  `json:"verifierUrl"`
	EtherscanAPIKey string  `json:"etherscanApiKey"`
}

// MissingFields lists the JSON keys that must be present but are empty.
// Verifier settings are only required when the deployment is verified.
func (c *NetworkConfig) MissingFields(verify bool) []string {
	missing := []string{}
	if c.ChainID == "" {
		missing = append(missing, "chainId")
	}
	if c.RPCURL == "" {
		missing = append(missing, "rpcUrl")
	}
	if verify {
		if c.VerifierURL == "" {
			missing = append(missing, "verifierUrl")
		}
		if c.EtherscanAPIKey == "" {
			missing = append(missing, "etherscanApiKey")
		}
	}
	return missing
}

// VaultConfig is the content of deploy-config/vault/<network>.<symbol>.json
type VaultConfig struct {
	UnderlyingCurrency string `json:"underlyingCurrency"`
}

func (c *VaultConfig) MissingFields() []string {
	if c.UnderlyingCurrency == "" {
		return []string{"underlyingCurrency"}
	}
	return []string{}
}
