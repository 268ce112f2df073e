package model

// Package model defines domain data structures used across the app: the loaded
// source image, export requests and results, and the status and severity enums
// shown by the UI. Values are plain data; no type here touches the filesystem.
