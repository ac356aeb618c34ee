package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado      = errors.New("recurso não encontrado")
	ErrUsuarioNaoExiste   = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado  = errors.New("o e-mail já está cadastrado")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrDuplicado          = errors.New("recurso duplicado")
	ErrNaoAutorizado      = errors.New("não autorizado")
	ErrAcessoNegado       = errors.New("acesso negado")
	ErrConflito           = errors.New("conflito com o estado atual")
	ErrFichaCiclica       = errors.New("ficha técnica cíclica")
	ErrRegrasSobrepostas  = errors.New("faixas de expedição sobrepostas")
)
