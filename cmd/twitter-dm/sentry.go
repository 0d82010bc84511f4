package main

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const sentryFlushTimeout = 5 * time.Second

func initSentry(dsn string) (bool, error) {
	if dsn == "" {
		return false, nil
	}

	err := sentry.Init(
		sentry.ClientOptions{
			Dsn: dsn,
			HTTPTransport: &http.Transport{
				ExpectContinueTimeout: 30 * time.Second,
				TLSHandshakeTimeout:   30 * time.Second,
				IdleConnTimeout:       30 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				MaxIdleConnsPerHost:   16,
			},
		},
	)
	if err != nil {
		return false, err
	}

	return true, nil
}

func reportError(err error) {
	sentry.CaptureException(err)
	sentry.Flush(sentryFlushTimeout)
}
