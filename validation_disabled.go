//go:build ncast_novalidate

package ncast

const validationEnabled = false
