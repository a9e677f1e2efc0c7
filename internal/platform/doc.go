package platform

// Package platform contains OS integration used by the command line:
// output paths for saved photos and opening them with the system viewer.
