// Package nativekit scaffolds the directory structure and boilerplate of a
// React Native (TypeScript) application.
package nativekit

// Version is the current nativekit release.
const Version = "0.4.0"
