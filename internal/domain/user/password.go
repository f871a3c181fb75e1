package user

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/haydnkong/usercenter/pkg/errors"
)

// PasswordVerifier 密码存储与比对的抽象
// 设计说明：
// 1. 密码比对集中在这一个接口后面，Handler和Service不感知具体方案
// 2. 默认使用PlaintextVerifier保持按值相等的对外认证契约
// 3. 切换到bcrypt只需改配置（security.password_scheme），不动任何业务代码
type PasswordVerifier interface {
	// Hash 计算密码的存储形态
	Hash(plain string) (string, error)

	// Verify 比对存储形态与调用方提供的明文
	// 不匹配时返回errors.ErrInvalidPassword
	Verify(stored, plain string) error
}

// NewVerifier 根据配置方案创建验证器
// scheme: plaintext | bcrypt（未知方案回落到plaintext）
func NewVerifier(scheme string) PasswordVerifier {
	if scheme == "bcrypt" {
		return &BcryptVerifier{Cost: bcrypt.DefaultCost}
	}
	return &PlaintextVerifier{}
}

// PlaintextVerifier 明文存储、按值比对
type PlaintextVerifier struct{}

func (v *PlaintextVerifier) Hash(plain string) (string, error) {
	return plain, nil
}

func (v *PlaintextVerifier) Verify(stored, plain string) error {
	if stored != plain {
		return apperrors.ErrInvalidPassword
	}
	return nil
}

// BcryptVerifier bcrypt哈希存储
// 学习要点：bcrypt自动加盐，相同密码每次哈希结果都不同
type BcryptVerifier struct {
	Cost int
}

func (v *BcryptVerifier) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), v.Cost)
	if err != nil {
		return "", apperrors.Wrap(err, "密码加密失败")
	}
	return string(hashed), nil
}

func (v *BcryptVerifier) Verify(stored, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}
