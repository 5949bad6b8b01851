// Package asm assembles DM32 assembly source into object programs.
//
// Assembly is two passes. Pass one classifies every line into one of
// the four statement shapes and assigns label addresses. Pass two
// rewrites symbolic references into pc-relative instructions and
// encodes the result, one word per non-comment line.
package asm
