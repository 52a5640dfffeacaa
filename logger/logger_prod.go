//go:build !dev
// +build !dev

package logger

import "log"

func HandleError(err error) {
	log.Printf("Error: %v\n", err)
}

// HandleLog is silent outside of dev builds
func HandleLog(msg string) {}
