// Package seqalign computes optimal pairwise sequence alignments:
// Needleman–Wunsch (global) and Smith–Waterman (local) with a linear gap
// model and a match/mismatch/gap scoring scheme.
//
// 🚀 What is pairwise alignment?
//
//	Two sequences are written one above the other, with gaps inserted so
//	that similar symbols line up. Every column is scored; the best
//	arrangement is found with an (m+1)x(n+1) dynamic-programming table and
//	recovered by walking that table backwards. It is used for DNA and
//	protein comparison as well as diff-like text comparison.
//
// ✨ Packages:
//
//	scoring/ — substitution scoring model over any comparable symbol type
//	align/   — matrix construction, global and local reconstruction
//	matrix/  — dense row-major integer grid backing the DP table
//
// Quick example:
//
//	A-AT      score = 10 - 4 + 4 + 10 = 20
//	AGCT      (match 10, mismatch 4, gap -4)
//
// Runnable programs live under examples/.
package seqalign
