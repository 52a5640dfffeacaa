//go:build dev
// +build dev

package logger

import "log"

func HandleError(err error) {
	log.Printf("Dev Mode - Error: %v\n", err)
}

func HandleLog(msg string) {
	log.Printf("Dev Mode - %s\n", msg)
}
