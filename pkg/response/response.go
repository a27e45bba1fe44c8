// Package response writes JSON documents in the API's wire format.
//
// Document keys follow the published contract (mensaje, error, detalles,
// total, usuarios, pedidos); helpers here only own the generic shapes.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends an arbitrary document with the given status.
func JSON(w http.ResponseWriter, status int, body interface{}) {
	write(w, status, body)
}

// OK sends a 200 JSON response.
func OK(w http.ResponseWriter, body interface{}) {
	write(w, http.StatusOK, body)
}

// Created sends a 201 JSON response.
func Created(w http.ResponseWriter, body interface{}) {
	write(w, http.StatusCreated, body)
}

// Message sends {"mensaje": msg} with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]string{"mensaje": msg})
}

// Error sends {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]string{"error": msg})
}
