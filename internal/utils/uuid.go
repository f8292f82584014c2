// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/health-enclave/models"
)

// UUIDGenerator issues document identifiers. Version 7 UUIDs sort by
// creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// DocumentIdentifier returns a fresh identifier for a new document.
func (g *UUIDGenerator) DocumentIdentifier() models.DocumentIdentifier {
	return models.DocumentIdentifier(g.Generate())
}
