// Package lexer turns program text into a located instruction sequence.
//
// The instruction set drives a machine with a single register (the hand),
// six memory cells (the floor), an input queue and an output sink:
//
//	inbox                  hand := next input value
//	outbox                 print hand, hand becomes empty
//	copyfrom N / copyto N  move between hand and cell N
//	add N / sub N          hand := hand ± cell N
//	bump_plus N            cell N += 1, hand := cell N
//	bump_minus N           cell N -= 1, hand := cell N
//	jump L                 continue at "jump_target L"
//	jump_if_zero L         jump when the hand is 0
//	jump_if_neg L          jump when the hand is negative
//	jump_target L          label
//
// Lexing is lenient: unknown words and opcodes with a missing or malformed
// argument are dropped without notice. LexStrict reports what was dropped.
package lexer
