package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GerarCodigoRetirada generates the human-readable pickup code printed
// on the package slip, ex: "ENC-48312"
func GerarCodigoRetirada() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		panic("falha ao gerar código de retirada")
	}
	return fmt.Sprintf("ENC-%05d", n.Int64())
}

// LimpaCPF strips every non-digit character from a CPF/CNPJ
func LimpaCPF(valor string) string {
	var b strings.Builder
	for _, r := range valor {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
