package validators

import "github.com/go-playground/validator/v10"

// Validate é a instância compartilhada usada pelos use cases para
// revalidar entrada no servidor, independente do que a UI já checou.
var Validate = validator.New()
