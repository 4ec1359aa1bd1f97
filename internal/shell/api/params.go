package api

import (
	"net/http"
	"strconv"
)

// Request parameter helpers. GET and DELETE carry parameters in the query
// string; PUT carries a form-encoded body. A missing or non-numeric value
// parses to zero, which downstream validation reports as an empty field.

func queryInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}

func formInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.FormValue(name))
	return n
}

func formFloat(r *http.Request, name string) float64 {
	f, _ := strconv.ParseFloat(r.FormValue(name), 64)
	return f
}
