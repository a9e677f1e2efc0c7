package fetch

// Package fetch implements the HTTP fetcher shared by every remote provider:
// JSON and binary requests, a typed error taxonomy and schema validation of
// JSON documents. It never retries; each failure is terminal for its call and
// the caller decides between fallback and absorption.
