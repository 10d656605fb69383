// Package edfio reads and writes biosignal channels in the EDF/EDF+ format,
// bridging recordings to the analysis packages: channels come back labeled
// with their sampling rate, or assembled directly into an rsa.Frame.
package edfio
