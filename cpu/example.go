package cpu

import (
	"sync"
)

// TimerText is the source of the built-in timer program.
const TimerText = `mov r0 #300    ; repeat 300 times, reps are not a measure of time
.timer:
    nop           ; do nothing this cycle
    sub r0 r0 #1  ; decrement the timer
    jnz .timer    ; repeat until the timer reaches zero
    mov bam #1    ; detonate
`

// TimerRom is the built-in timer program, assembled on first use.
var TimerRom = sync.OnceValues(func() (*Rom, error) {
	return (&Assembler{}).Assemble(TimerText)
})
