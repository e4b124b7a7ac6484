package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateJobID gera o identificador de uma execução de job em lote
func GenerateJobID(prefix string) string {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		return prefix
	}
	return prefix + "_" + id
}
