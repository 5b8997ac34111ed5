// Command ed25519demo is a smoke-test harness in the spirit of the teacher
// package's main.go: generate a keypair, sign a random message, verify it,
// and optionally corrupt the message to show verification failing.
package main

import (
	"crypto/rand"
	"fmt"

	ed25519 "github.com/yuzonightly/ed25519"
)

func rng(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

func hex(s []byte) string {
	return fmt.Sprintf("%x", s)
}

func echo(label string, value interface{}) {
	fmt.Println(label, value)
}

func testSign(corrupt bool) {
	fmt.Println("\nTEST SIGNING: should validate =", !corrupt)

	kp, err := ed25519.Generate()
	if err != nil {
		echo("  generate failed:", err)
		return
	}
	secretBytes := kp.Secret.Bytes()
	publicBytes := kp.Public.Bytes()
	echo("  secret     :", hex(secretBytes[:]))
	echo("  public     :", hex(publicBytes[:]))

	message := rng(16)
	echo("  message    :", hex(message))

	sig := kp.Sign(message)
	sigBytes := sig.Bytes()
	echo("  signature  :", hex(sigBytes[:]))

	if corrupt {
		r := rng(2)
		if r[1] == 0 {
			r[1] = 1
		}
		message[int(r[0])%len(message)] += r[1]
		echo("  msg-altered:", hex(message))
	}

	err = kp.Public.Verify(message, sig)
	echo("  valid?     :", err == nil)
	echo("  test passed:", (err == nil) != corrupt)

	kp.Secret.Zero()
	fmt.Println("")
}

func main() {
	for i := 0; i < 10; i++ {
		testSign(false)
		testSign(true)
	}
}
