package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// atomic output writes, image file naming, and OS reveal of exported files.
