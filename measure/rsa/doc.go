// Package rsa quantifies respiratory sinus arrhythmia, the modulation of
// heart-beat timing by the breathing cycle. Two estimators are provided: the
// peak-to-trough spread of inter-beat intervals within each breath, and the
// Porges-Bohrer log-variance estimate of the heart-rate signal band-limited
// to the spontaneous respiration band.
package rsa
