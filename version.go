package main

// version is overridden at build time with
// -ldflags "-X main.version=$(git describe --tags --always)"
var version = "dev"
