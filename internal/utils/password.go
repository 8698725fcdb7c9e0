package utils

import "golang.org/x/crypto/bcrypt"

// HashClave retorna el hash bcrypt de la clave en texto plano.
func HashClave(clave string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckClave compara el hash bcrypt con la clave en texto y retorna true si coincide.
func CheckClave(hash, clave string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clave))
	return err == nil
}
