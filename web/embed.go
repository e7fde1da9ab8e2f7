package web

import "embed"

// TemplatesFS embeds the component and page templates for server-side rendering.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS embeds static assets (stylesheet, client glue).
//
//go:embed static/*
var StaticFS embed.FS
